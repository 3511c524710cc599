package slack

import (
	"context"
	"fmt"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ReactionRepository はSlack APIを使用してメッセージのリアクションを取得するリポジトリ
type ReactionRepository struct {
	client  *slack.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewReactionRepository は新しいReactionRepositoryを作成する
func NewReactionRepository(client *slack.Client, limiter *rate.Limiter, logger *zap.Logger) *ReactionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReactionRepository{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// FindByMessage は指定メッセージに付いたリアクションの一覧を取得する
func (r *ReactionRepository) FindByMessage(ctx context.Context, ref domain.MessageRef) (domain.Reactions, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("レート制限の待機中に中断されました: %w", err)
	}

	r.logger.Debug("リアクションを取得します",
		zap.String("channel_id", ref.ChannelID),
		zap.String("timestamp", ref.Timestamp),
	)

	items, err := r.client.GetReactionsContext(ctx,
		slack.NewRefToMessage(ref.ChannelID, ref.Timestamp),
		slack.GetReactionsParameters{Full: true},
	)
	if err != nil {
		return nil, fmt.Errorf("リアクション取得エラー: %w", translateAPIError(ref.ChannelID, err))
	}

	reactions := make(domain.Reactions, 0, len(items))
	for _, item := range items {
		reactions = append(reactions, domain.Reaction{
			Name:  item.Name,
			Count: item.Count,
			Users: item.Users,
		})
	}

	return reactions, nil
}
