package domain

import "strings"

// Channel はSlackチャンネルを表すドメインモデル
type Channel struct {
	ID   string
	Name string
}

// IsChannelID は文字列がチャンネルIDの形式かどうかを返す
// チャンネルIDは必ず "C" で始まる
func IsChannelID(s string) bool {
	return strings.HasPrefix(s, channelIDPrefix)
}

// NormalizeChannelName はチャンネル名の先頭の "#" を取り除く
// 例: "#general" -> "general"
func NormalizeChannelName(name string) string {
	return strings.TrimPrefix(name, "#")
}
