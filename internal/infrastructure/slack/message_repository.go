package slack

import (
	"context"
	"fmt"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// messageNotFoundCode は指定タイムスタンプのメッセージが存在しない場合のAPIエラーコード
const messageNotFoundCode = "message_not_found"

// MessageRepository はSlack APIを使用してメッセージを取得するリポジトリ
type MessageRepository struct {
	client  *slack.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewMessageRepository は新しいMessageRepositoryを作成する
func NewMessageRepository(client *slack.Client, limiter *rate.Limiter, logger *zap.Logger) *MessageRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageRepository{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// FindByRef はチャンネルIDとタイムスタンプで指定されたメッセージを1件取得する
func (r *MessageRepository) FindByRef(ctx context.Context, ref domain.MessageRef) (*domain.Message, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("レート制限の待機中に中断されました: %w", err)
	}

	r.logger.Debug("メッセージを取得します",
		zap.String("channel_id", ref.ChannelID),
		zap.String("timestamp", ref.Timestamp),
	)

	// OldestとLatestに同じタイムスタンプを指定して対象メッセージのみを取得する
	history, err := r.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: ref.ChannelID,
		Oldest:    ref.Timestamp,
		Latest:    ref.Timestamp,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("メッセージ取得エラー: %w", translateAPIError(ref.ChannelID, err))
	}

	if len(history.Messages) == 0 {
		return nil, fmt.Errorf("メッセージ取得エラー: %w", &domain.APIError{Code: messageNotFoundCode})
	}

	return convertToDomainMessage(&history.Messages[0], ref.ChannelID), nil
}

// convertToDomainMessage はSlackのMessageをドメインモデルに変換する
func convertToDomainMessage(msg *slack.Message, channelID string) *domain.Message {
	reactions := make(domain.Reactions, 0, len(msg.Reactions))
	for _, reaction := range msg.Reactions {
		reactions = append(reactions, domain.Reaction{
			Name:  reaction.Name,
			Count: reaction.Count,
			Users: reaction.Users,
		})
	}

	return &domain.Message{
		Text:      msg.Text,
		UserID:    msg.User,
		ChannelID: channelID,
		Timestamp: msg.Timestamp,
		Reactions: reactions,
	}
}
