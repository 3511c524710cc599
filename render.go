package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

// renderOptions は一覧出力の挙動を制御する
type renderOptions struct {
	Format string
	Sort   bool
	Color  bool
}

// csvRow はCSV出力の1行分
type csvRow struct {
	UserID      string `csv:"user_id"`
	DisplayName string `csv:"display_name"`
}

// renderUsers はリアクションしたユーザーの一覧を出力する
func renderUsers(w io.Writer, users []*domain.User, reaction string, opts renderOptions) error {
	if opts.Sort {
		users = sortedByDisplayName(users)
	}

	switch opts.Format {
	case formatCSV:
		return renderCSV(w, users)
	default:
		return renderText(w, users, reaction, opts.Color)
	}
}

// renderText はテキスト形式で一覧を出力する
func renderText(w io.Writer, users []*domain.User, reaction string, colored bool) error {
	if len(users) == 0 {
		_, err := fmt.Fprintf(w, ":%s: にリアクションしたユーザーは見つかりませんでした\n", reaction)
		return err
	}

	header := fmt.Sprintf("リアクションしたユーザー (%d人):", len(users))
	if colored {
		header = color.New(color.FgCyan, color.Bold).Sprint(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, user := range users {
		if _, err := fmt.Fprintf(w, "- %s\n", user.GetDisplayName()); err != nil {
			return err
		}
	}
	return nil
}

// renderCSV はCSV形式で一覧を出力する
// ユーザーがいない場合もヘッダー行だけを出力する
func renderCSV(w io.Writer, users []*domain.User) error {
	rows := make([]csvRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, csvRow{
			UserID:      user.ID,
			DisplayName: user.GetDisplayName(),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fmt.Errorf("CSV出力エラー: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// renderMessage は対象メッセージの本文を出力する
func renderMessage(w io.Writer, msg *domain.Message, colored bool) {
	label := "メッセージ:"
	if colored {
		label = color.New(color.FgGreen, color.Bold).Sprint(label)
	}
	fmt.Fprintf(w, "%s %s\n", label, msg.Text)
}

// sortedByDisplayName は表示名の辞書順に並べたコピーを返す
func sortedByDisplayName(users []*domain.User) []*domain.User {
	sorted := make([]*domain.User, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GetDisplayName() < sorted[j].GetDisplayName()
	})
	return sorted
}
