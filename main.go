package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/UUGTech/slack-reactors/internal/config"
	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 終了コード
const (
	exitOK           = 0
	exitConfigError  = 1
	exitUsageError   = 2
	exitNotInChannel = 3
	exitAPIError     = 4
)

func main() {
	// .envがあれば読み込む（なくてもよい）
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newFinder).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor はエラーの種類から終了コードを決める
func exitCodeFor(err error) int {
	var notIn *domain.NotInChannelError
	var apiErr *domain.APIError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrTokenNotFound):
		return exitConfigError
	case errors.As(err, &notIn):
		return exitNotInChannel
	case errors.As(err, &apiErr):
		return exitAPIError
	default:
		return exitUsageError
	}
}

// newLogger はコマンド用のロガーを作成する
// 通常は警告以上のみを標準エラーに出し、verbose時はデバッグログまで出す
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}
