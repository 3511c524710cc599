package service

import (
	"context"
	"fmt"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency はユーザー情報取得の並行数の既定値
const defaultConcurrency = 10

// Repositories はFinderが依存するリポジトリの集合
type Repositories struct {
	Reactions domain.ReactionRepository
	Users     domain.UserRepository
	Channels  domain.ChannelRepository
	Messages  domain.MessageRepository
}

// Finder はメッセージのリアクションからユーザーを特定するサービス
type Finder struct {
	repos       Repositories
	concurrency int
	logger      *zap.Logger
}

// NewFinder は新しいFinderサービスを作成する
// concurrencyが1の場合ユーザー情報は逐次取得され、0以下の場合は既定値が使われる
func NewFinder(repos Repositories, concurrency int, logger *zap.Logger) *Finder {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{
		repos:       repos,
		concurrency: concurrency,
		logger:      logger,
	}
}

// FindReactionUsers は指定リアクションを付けたユーザーを表示名解決済みで返す
// 返り値の順序はSlack APIが返したユーザーIDの順序と一致する
// 一致するリアクションが存在しない場合は空のスライスを返す（エラーではない）
func (f *Finder) FindReactionUsers(ctx context.Context, ref domain.MessageRef, reactionName string) ([]*domain.User, error) {
	reactions, err := f.repos.Reactions.FindByMessage(ctx, ref)
	if err != nil {
		return nil, err
	}

	reaction, found := reactions.Named(reactionName)
	if !found {
		f.logger.Debug("一致するリアクションがありません",
			zap.String("reaction", reactionName),
			zap.Int("reaction_kinds", len(reactions)),
		)
		return []*domain.User{}, nil
	}

	f.logger.Debug("リアクションが見つかりました",
		zap.String("reaction", reaction.Name),
		zap.Int("count", reaction.Count),
		zap.Int("user_count", len(reaction.Users)),
	)

	return f.resolveUsers(ctx, reaction.Users)
}

// ResolveChannelID はチャンネル指定（IDまたは#付き名前）をチャンネルIDに解決する
func (f *Finder) ResolveChannelID(ctx context.Context, channel string) (string, error) {
	if domain.IsChannelID(channel) {
		return channel, nil
	}

	name := domain.NormalizeChannelName(channel)
	found, err := f.repos.Channels.FindByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("チャンネル名の解決エラー: %w", err)
	}
	return found.ID, nil
}

// FindMessage は対象メッセージを取得する
func (f *Finder) FindMessage(ctx context.Context, ref domain.MessageRef) (*domain.Message, error) {
	msg, err := f.repos.Messages.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("メッセージを取得しました",
		zap.String("ref", ref.String()),
		zap.Bool("has_reactions", msg.HasReactions()),
	)
	return msg, nil
}

// resolveUsers はユーザーIDの一覧を表示名解決する
// 各ゴルーチンは自分のインデックスにのみ書き込むため、結果の順序は入力と一致する
func (f *Finder) resolveUsers(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	users := make([]*domain.User, len(userIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, userID := range userIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			users[i] = f.resolveUser(ctx, userID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ユーザー情報の取得が中断されました: %w", err)
	}

	return users, nil
}

// resolveUser はユーザーIDからユーザー情報を取得する
// 取得に失敗した場合はIDのみのユーザーを返し、エラーは呼び出し元に伝えない
func (f *Finder) resolveUser(ctx context.Context, userID string) *domain.User {
	user, err := f.repos.Users.FindByID(ctx, userID)
	if err != nil {
		f.logger.Debug("ユーザー情報の取得に失敗したためIDをそのまま使います",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return &domain.User{ID: userID}
	}
	return user
}
