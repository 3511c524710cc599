package domain

import "context"

// ChannelRepository はチャンネル情報を取得するリポジトリインターフェース
type ChannelRepository interface {
	FindByName(ctx context.Context, name string) (*Channel, error)
}

// MessageRepository はメッセージを取得するリポジトリインターフェース
type MessageRepository interface {
	FindByRef(ctx context.Context, ref MessageRef) (*Message, error)
}

// ReactionRepository はメッセージに付いたリアクションを取得するリポジトリインターフェース
type ReactionRepository interface {
	FindByMessage(ctx context.Context, ref MessageRef) (Reactions, error)
}

// UserRepository はユーザー情報を取得するリポジトリインターフェース
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*User, error)
}
