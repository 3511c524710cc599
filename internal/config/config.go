package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// 設定の既定値
const (
	DefaultRateLimit   = 10.0
	DefaultBurst       = 5
	DefaultConcurrency = 10
	DefaultFormat      = "text"
)

// Config はアプリケーション全体の設定
type Config struct {
	Slack  SlackConfig  `toml:"slack"`
	Output OutputConfig `toml:"output"`
	Lookup LookupConfig `toml:"lookup"`
}

// SlackConfig はSlack APIに関する設定
type SlackConfig struct {
	Token     string  `toml:"token"`
	RateLimit float64 `toml:"rate_limit"` // 1秒あたりのAPI呼び出し数
	Burst     int     `toml:"burst"`
}

// OutputConfig は結果出力に関する設定
type OutputConfig struct {
	Format string `toml:"format"` // "text" または "csv"
	Sort   bool   `toml:"sort"`   // 表示名を辞書順に並べ替えるか
}

// LookupConfig はユーザー情報取得に関する設定
type LookupConfig struct {
	Concurrency int `toml:"concurrency"`
}

// New は既定値で初期化されたConfigを返す
func New() *Config {
	return &Config{
		Slack: SlackConfig{
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Lookup: LookupConfig{
			Concurrency: DefaultConcurrency,
		},
	}
}

// Load は設定ファイルを読み込んだConfigを返す
// pathが空の場合はファイルを読まず既定値のみを使う
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイル読み込みエラー: %w", err)
	}
	return cfg, nil
}
