package domain

import "strings"

// Reaction はSlackのリアクション（絵文字）を表すドメインモデル
type Reaction struct {
	Name  string   // 絵文字名（例: "thumbsup", "smile"）
	Count int      // リアクション数
	Users []string // リアクションしたユーザーIDの一覧（API応答順）
}

// Reactions はメッセージに付いたリアクションの集合
type Reactions []Reaction

// Named は絵文字名が完全一致するリアクションを返す
// 大文字小文字は区別し、複数一致する場合は先頭のものを返す
func (rs Reactions) Named(name string) (Reaction, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Reaction{}, false
}

// NormalizeReactionName は絵文字名の前後のコロンを取り除く
// 例: ":thumbsup:" -> "thumbsup"
func NormalizeReactionName(name string) string {
	return strings.Trim(name, ":")
}
