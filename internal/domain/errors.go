package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPermalink はメッセージURLの形式が不正であることを示す
	ErrInvalidPermalink = errors.New("無効なSlackメッセージURLの形式です")

	// ErrInvalidRef はチャンネルIDまたはタイムスタンプの形式が不正であることを示す
	ErrInvalidRef = errors.New("無効なメッセージ参照です")
)

// NotInChannelError はアプリが対象チャンネルに参加していないことを示すエラー
type NotInChannelError struct {
	ChannelID string
}

func (e *NotInChannelError) Error() string {
	return fmt.Sprintf("チャンネル %s に参加していません。Slack Appをチャンネルのインテグレーションに追加してください", e.ChannelID)
}

// APIError はSlack APIが返したエラーコードを保持するエラー
type APIError struct {
	Code string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Slack APIエラー: %s", e.Code)
}
