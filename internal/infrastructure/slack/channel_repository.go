package slack

import (
	"context"
	"fmt"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ChannelRepository はSlack APIを使用してチャンネル情報を取得するリポジトリ
type ChannelRepository struct {
	client  *slack.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewChannelRepository は新しいChannelRepositoryを作成する
func NewChannelRepository(client *slack.Client, limiter *rate.Limiter, logger *zap.Logger) *ChannelRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChannelRepository{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// FindByName はチャンネル名からチャンネルを検索する
func (r *ChannelRepository) FindByName(ctx context.Context, name string) (*domain.Channel, error) {
	cursor := ""

	for {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("レート制限の待機中に中断されました: %w", err)
		}

		conversations, nextCursor, err := r.client.GetConversationsContext(ctx, &slack.GetConversationsParameters{
			ExcludeArchived: true,
			Limit:           1000,
			Cursor:          cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("チャンネル一覧取得エラー: %w", translateAPIError("", err))
		}

		for _, conversation := range conversations {
			if conversation.Name == name {
				r.logger.Debug("チャンネル名を解決しました",
					zap.String("name", name),
					zap.String("channel_id", conversation.ID),
				)
				return &domain.Channel{
					ID:   conversation.ID,
					Name: conversation.Name,
				}, nil
			}
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	return nil, fmt.Errorf("チャンネル '%s' が見つかりません", name)
}
