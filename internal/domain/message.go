package domain

// Message はSlackメッセージを表すドメインモデル
type Message struct {
	Text      string
	UserID    string
	ChannelID string
	Timestamp string // Slack形式のタイムスタンプ（例: "1234567890.123456"）
	Reactions Reactions
}

// HasReactions はメッセージにリアクションがあるかどうかを返す
func (m *Message) HasReactions() bool {
	return len(m.Reactions) > 0
}
