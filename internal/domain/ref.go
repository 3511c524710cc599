package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// channelIDPrefix はSlackチャンネルIDの先頭文字
const channelIDPrefix = "C"

// timestampPattern はSlackメッセージタイムスタンプの形式（10桁.6桁）
var timestampPattern = regexp.MustCompile(`^[0-9]{10}\.[0-9]{6}$`)

// MessageRef はチャンネルIDとタイムスタンプでメッセージを一意に特定する値オブジェクト
type MessageRef struct {
	ChannelID string
	Timestamp string
}

// NewMessageRef は検証済みのMessageRefを生成する
// チャンネルIDとタイムスタンプの形式不正はAPI呼び出し前にここで弾く
func NewMessageRef(channelID, timestamp string) (MessageRef, error) {
	if !strings.HasPrefix(channelID, channelIDPrefix) {
		return MessageRef{}, fmt.Errorf("%w: チャンネルIDは %q で始まる必要があります: %q", ErrInvalidRef, channelIDPrefix, channelID)
	}
	if err := ValidateTimestamp(timestamp); err != nil {
		return MessageRef{}, err
	}
	return MessageRef{ChannelID: channelID, Timestamp: timestamp}, nil
}

// ValidateTimestamp はタイムスタンプがSlack形式（10桁.6桁）かを検証する
func ValidateTimestamp(timestamp string) error {
	if !timestampPattern.MatchString(timestamp) {
		return fmt.Errorf("%w: タイムスタンプは 10桁.6桁 の形式である必要があります: %q", ErrInvalidRef, timestamp)
	}
	return nil
}

// String はログ出力用の文字列表現を返す
func (r MessageRef) String() string {
	return r.ChannelID + "/" + r.Timestamp
}
