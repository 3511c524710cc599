package domain

import (
	"errors"
	"testing"
)

func TestParsePermalink(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    MessageRef
		wantErr bool
	}{
		{
			name:   "標準的なパーマリンク",
			rawURL: "https://ws.slack.com/archives/C0123456789/p1234567890123456",
			want: MessageRef{
				ChannelID: "C0123456789",
				Timestamp: "1234567890.123456",
			},
		},
		{
			name:   "スレッドのクエリ文字列は無視される",
			rawURL: "https://ws.slack.com/archives/C0123456789/p1234567890123456?thread_ts=1234567890.000100&cid=C0123456789",
			want: MessageRef{
				ChannelID: "C0123456789",
				Timestamp: "1234567890.123456",
			},
		},
		{
			name:   "複数の候補セグメントは先頭が勝つ",
			rawURL: "https://ws.slack.com/archives/C0000000001/C0000000002/p1111111111222222",
			want: MessageRef{
				ChannelID: "C0000000001",
				Timestamp: "1111111111.222222",
			},
		},
		{
			name:    "チャンネルIDセグメントがない",
			rawURL:  "https://ws.slack.com/archives/p1234567890123456",
			wantErr: true,
		},
		{
			name:    "タイムスタンプセグメントがない",
			rawURL:  "https://ws.slack.com/archives/C0123456789",
			wantErr: true,
		},
		{
			name:    "タイムスタンプの桁数が足りない",
			rawURL:  "https://ws.slack.com/archives/C0123456789/p12345",
			wantErr: true,
		},
		{
			name:    "タイムスタンプに数字以外が含まれる",
			rawURL:  "https://ws.slack.com/archives/C0123456789/p123456789012345x",
			wantErr: true,
		},
		{
			name:    "空文字列",
			rawURL:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePermalink(tt.rawURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePermalink() error = nil, want error")
				}
				if !errors.Is(err, ErrInvalidPermalink) {
					t.Errorf("ParsePermalink() error = %v, want ErrInvalidPermalink", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePermalink() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePermalink() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
