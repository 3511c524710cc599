package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// timestampSegmentMarker はパーマリンク中のタイムスタンプセグメントの先頭文字
const timestampSegmentMarker = "p"

// timestampDigitsPattern はタイムスタンプセグメントの数字部分（16桁）
var timestampDigitsPattern = regexp.MustCompile(`^[0-9]{16}$`)

// ParsePermalink はSlackメッセージのパーマリンクからMessageRefを取り出す
//
// 解析手順:
//  1. 最初の "?" 以降（クエリ文字列）を捨てる
//  2. 残りを "/" で分割する
//  3. "C" で始まる最初のセグメントをチャンネルIDとする
//  4. "p" で始まる最初のセグメントの数字16桁を 10桁.6桁 のタイムスタンプに変換する
//
// 例: https://ws.slack.com/archives/C0123456789/p1234567890123456
// -> MessageRef{ChannelID: "C0123456789", Timestamp: "1234567890.123456"}
func ParsePermalink(rawURL string) (MessageRef, error) {
	trimmed, _, _ := strings.Cut(rawURL, "?")
	segments := strings.Split(trimmed, "/")

	channelID, ok := firstWithPrefix(segments, channelIDPrefix)
	if !ok {
		return MessageRef{}, fmt.Errorf("%w: チャンネルIDのセグメントが見つかりません: %q", ErrInvalidPermalink, rawURL)
	}

	tsSegment, ok := firstWithPrefix(segments, timestampSegmentMarker)
	if !ok {
		return MessageRef{}, fmt.Errorf("%w: タイムスタンプのセグメントが見つかりません: %q", ErrInvalidPermalink, rawURL)
	}

	digits := strings.TrimPrefix(tsSegment, timestampSegmentMarker)
	if !timestampDigitsPattern.MatchString(digits) {
		return MessageRef{}, fmt.Errorf("%w: タイムスタンプセグメントは %q + 数字16桁である必要があります: %q", ErrInvalidPermalink, timestampSegmentMarker, tsSegment)
	}

	ref, err := NewMessageRef(channelID, digits[:10]+"."+digits[10:])
	if err != nil {
		return MessageRef{}, fmt.Errorf("%w: %v", ErrInvalidPermalink, err)
	}
	return ref, nil
}

// firstWithPrefix は指定の接頭辞で始まる最初の要素を返す
func firstWithPrefix(segments []string, prefix string) (string, bool) {
	for _, s := range segments {
		if strings.HasPrefix(s, prefix) {
			return s, true
		}
	}
	return "", false
}
