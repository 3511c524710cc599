package slack

import (
	"context"
	"fmt"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// UserRepository はSlack APIを使用してユーザー情報を取得するリポジトリ
type UserRepository struct {
	client  *slack.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewUserRepository は新しいUserRepositoryを作成する
func NewUserRepository(client *slack.Client, limiter *rate.Limiter, logger *zap.Logger) *UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRepository{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

// FindByID は指定されたIDのユーザーを取得する
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("レート制限の待機中に中断されました: %w", err)
	}

	r.logger.Debug("ユーザー情報を取得します", zap.String("user_id", userID))

	userInfo, err := r.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザー情報取得エラー: %w", translateAPIError("", err))
	}

	return convertToDomainUser(userInfo), nil
}

// convertToDomainUser はSlackのユーザー情報をドメインモデルに変換する
// RealNameはプロフィールの値を優先し、空の場合はトップレベルの値を使う
func convertToDomainUser(user *slack.User) *domain.User {
	realName := user.Profile.RealName
	if realName == "" {
		realName = user.RealName
	}
	return &domain.User{
		ID:          user.ID,
		Name:        user.Name,
		DisplayName: user.Profile.DisplayName,
		RealName:    realName,
	}
}
