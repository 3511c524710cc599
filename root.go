package main

import (
	"context"
	"fmt"
	"os"

	"github.com/UUGTech/slack-reactors/internal/config"
	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/UUGTech/slack-reactors/internal/infrastructure/slack"
	"github.com/UUGTech/slack-reactors/internal/service"
	"github.com/mattn/go-isatty"
	slackapi "github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rootOptions はコマンドラインフラグの値を保持する
type rootOptions struct {
	url         string
	channel     string
	timestamp   string
	reaction    string
	configPath  string
	format      string
	sortNames   bool
	showMessage bool
	concurrency int
	verbose     bool
	noColor     bool
}

// reactionUserFinder はコマンドが必要とするサービスのインターフェース
type reactionUserFinder interface {
	FindReactionUsers(ctx context.Context, ref domain.MessageRef, reactionName string) ([]*domain.User, error)
	ResolveChannelID(ctx context.Context, channel string) (string, error)
	FindMessage(ctx context.Context, ref domain.MessageRef) (*domain.Message, error)
}

// finderBuilder はトークンと設定からサービスを組み立てる
type finderBuilder func(token string, cfg *config.Config, logger *zap.Logger) reactionUserFinder

// newFinder は本番用のFinderを組み立てる
func newFinder(token string, cfg *config.Config, logger *zap.Logger) reactionUserFinder {
	client := slackapi.New(token)
	limiter := rate.NewLimiter(rate.Limit(cfg.Slack.RateLimit), cfg.Slack.Burst)

	return service.NewFinder(service.Repositories{
		Reactions: slack.NewReactionRepository(client, limiter, logger),
		Users:     slack.NewUserRepository(client, limiter, logger),
		Channels:  slack.NewChannelRepository(client, limiter, logger),
		Messages:  slack.NewMessageRepository(client, limiter, logger),
	}, cfg.Lookup.Concurrency, logger)
}

// newRootCmd はルートコマンドを作成する
func newRootCmd(build finderBuilder) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "slack-reactors",
		Short: "Slackメッセージに特定のリアクションを付けたユーザーを一覧表示する",
		Long: `Slackメッセージのパーマリンク、またはチャンネルとタイムスタンプを指定して、
特定のリアクション（絵文字）を付けたユーザーの表示名を一覧表示します。`,
		Example: `  slack-reactors -u https://ws.slack.com/archives/C0123456789/p1234567890123456 -r thumbsup
  slack-reactors -c C0123456789 -t 1234567890.123456 -r tada
  slack-reactors -c '#general' -t 1234567890.123456 -r eyes --sort`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, build)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.url, "url", "u", "", "SlackメッセージのパーマリンクURL")
	flags.StringVarP(&opts.channel, "channel", "c", "", "チャンネルID（Cで始まる）または#付きチャンネル名")
	flags.StringVarP(&opts.timestamp, "timestamp", "t", "", "メッセージのタイムスタンプ（例: 1234567890.123456）")
	flags.StringVarP(&opts.reaction, "reaction", "r", "", "リアクション名（例: thumbsup）")
	flags.StringVar(&opts.configPath, "config", "", "設定ファイル（TOML）のパス")
	flags.StringVar(&opts.format, "format", "", "出力形式（text または csv）")
	flags.BoolVar(&opts.sortNames, "sort", false, "表示名を辞書順に並べ替える")
	flags.BoolVar(&opts.showMessage, "show-message", false, "対象メッセージの本文も表示する")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "ユーザー情報取得の並行数")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "デバッグログを出力する")
	flags.BoolVar(&opts.noColor, "no-color", false, "色付き出力を無効にする")

	cmd.MarkFlagsMutuallyExclusive("url", "channel")
	cmd.MarkFlagsOneRequired("url", "channel")
	_ = cmd.MarkFlagRequired("reaction")

	cmd.AddCommand(newStoreTokenCmd())

	return cmd
}

// runRoot はルートコマンドの本体
func runRoot(cmd *cobra.Command, opts *rootOptions, build finderBuilder) error {
	// フラグ検証を通過した後のエラーでは使い方を表示しない
	cmd.SilenceUsage = true

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("ロガー初期化エラー: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// フラグは設定ファイルより優先される
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.sortNames {
		cfg.Output.Sort = true
	}
	if opts.concurrency > 0 {
		cfg.Lookup.Concurrency = opts.concurrency
	}
	if cfg.Output.Format != formatText && cfg.Output.Format != formatCSV {
		return fmt.Errorf("不明な出力形式です: %q", cfg.Output.Format)
	}

	reaction := domain.NormalizeReactionName(opts.reaction)
	if reaction == "" {
		return fmt.Errorf("リアクション名が空です")
	}

	// 資格情報はAPI呼び出しの前に解決する
	token, err := cfg.ResolveToken()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	finder := build(token, cfg, logger)

	ref, err := resolveRef(ctx, finder, opts)
	if err != nil {
		return err
	}

	logger.Debug("対象メッセージを処理します",
		zap.String("ref", ref.String()),
		zap.String("reaction", reaction),
	)

	out := cmd.OutOrStdout()
	colored := useColor(opts)

	if opts.showMessage {
		msg, err := finder.FindMessage(ctx, ref)
		if err != nil {
			return err
		}
		renderMessage(out, msg, colored)
	}

	users, err := finder.FindReactionUsers(ctx, ref, reaction)
	if err != nil {
		return err
	}

	return renderUsers(out, users, reaction, renderOptions{
		Format: cfg.Output.Format,
		Sort:   cfg.Output.Sort,
		Color:  colored,
	})
}

// resolveRef はフラグの指定内容からメッセージ参照を組み立てる
// ネットワークアクセスが必要になるのはチャンネル名解決のときだけで、
// タイムスタンプの形式不正はその前に弾く
func resolveRef(ctx context.Context, finder reactionUserFinder, opts *rootOptions) (domain.MessageRef, error) {
	if opts.url != "" {
		return domain.ParsePermalink(opts.url)
	}

	if opts.timestamp == "" {
		return domain.MessageRef{}, fmt.Errorf("--channel を使う場合は --timestamp も指定してください")
	}
	if err := domain.ValidateTimestamp(opts.timestamp); err != nil {
		return domain.MessageRef{}, err
	}

	channelID, err := finder.ResolveChannelID(ctx, opts.channel)
	if err != nil {
		return domain.MessageRef{}, err
	}
	return domain.NewMessageRef(channelID, opts.timestamp)
}

// useColor は色付き出力を行うかを判定する
func useColor(opts *rootOptions) bool {
	if opts.noColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newStoreTokenCmd はトークンをOSキーリングへ保存するサブコマンドを作成する
func newStoreTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store-token",
		Short: "Slack BotトークンをOSのキーリングに保存する",
		Long: `Slack Botトークンを対話的に入力し、OSのキーリングに保存します。
保存したトークンは環境変数 ` + config.TokenEnvVar + ` が未設定のときに使われます。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := config.StoreToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "トークンをキーリングに保存しました")
			return nil
		},
	}
}
