package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/zalando/go-keyring"
)

// TokenEnvVar は資格情報を読み込む環境変数名
const TokenEnvVar = "SLACK_BOT_TOKEN"

// OSキーリング上の保存先
const (
	keyringService = "slack-reactors"
	keyringItem    = "slack-bot-token"
)

// ErrTokenNotFound は資格情報がどこにも設定されていないことを示す
var ErrTokenNotFound = fmt.Errorf("環境変数 %s が設定されていません", TokenEnvVar)

// ResolveToken は資格情報を 環境変数 → 設定ファイル → OSキーリング の順で解決する
// どこにも見つからない場合はErrTokenNotFoundを返す
// この関数はネットワークアクセスを行わない
func (c *Config) ResolveToken() (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	if c.Slack.Token != "" {
		return c.Slack.Token, nil
	}
	// キーリングが使えない環境のエラーは未設定と同じ扱いにする
	if token, err := keyring.Get(keyringService, keyringItem); err == nil && token != "" {
		return token, nil
	}
	return "", ErrTokenNotFound
}

// StoreToken はトークンを対話的に入力させてOSキーリングへ保存する
func StoreToken() error {
	prompt := promptui.Prompt{
		Label: "Slack Bot Token",
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("トークンを入力してください")
			}
			return nil
		},
	}

	token, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("トークン入力エラー: %w", err)
	}

	if err := keyring.Set(keyringService, keyringItem, token); err != nil {
		return fmt.Errorf("キーリングへの保存エラー: %w", err)
	}
	return nil
}
