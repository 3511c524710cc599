package slack

import (
	"errors"

	"github.com/UUGTech/slack-reactors/internal/domain"
	"github.com/slack-go/slack"
)

// notInChannelCode はアプリが参加していないチャンネルを参照した際のAPIエラーコード
const notInChannelCode = "not_in_channel"

// translateAPIError はSlack APIが返したエラーコードをドメインのエラー型に変換する
// Slack API以外のエラー（通信エラーなど）はそのまま返す
func translateAPIError(channelID string, err error) error {
	var apiErr slack.SlackErrorResponse
	if !errors.As(err, &apiErr) {
		return err
	}
	if apiErr.Err == notInChannelCode && channelID != "" {
		return &domain.NotInChannelError{ChannelID: channelID}
	}
	return &domain.APIError{Code: apiErr.Err}
}
