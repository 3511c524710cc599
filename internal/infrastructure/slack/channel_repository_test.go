package slack

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"
)

func TestChannelRepository_FindByName(t *testing.T) {
	t.Run("ページネーションをたどってチャンネルを見つける", func(t *testing.T) {
		calls := 0
		mux := http.NewServeMux()
		mux.HandleFunc("/conversations.list", func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			switch calls {
			case 1:
				assert.Empty(t, r.FormValue("cursor"))
				fmt.Fprint(w, `{
					"ok": true,
					"channels": [
						{"id": "C0000000001", "name": "random"},
						{"id": "C0000000002", "name": "dev"}
					],
					"response_metadata": {"next_cursor": "cursor-1"}
				}`)
			default:
				assert.Equal(t, "cursor-1", r.FormValue("cursor"))
				fmt.Fprint(w, `{
					"ok": true,
					"channels": [
						{"id": "C0000000003", "name": "general"}
					],
					"response_metadata": {"next_cursor": ""}
				}`)
			}
		})

		repo := NewChannelRepository(newTestClient(t, mux), rate.NewLimiter(rate.Inf, 0), zaptest.NewLogger(t))

		channel, err := repo.FindByName(context.Background(), "general")
		require.NoError(t, err)
		assert.Equal(t, "C0000000003", channel.ID)
		assert.Equal(t, "general", channel.Name)
		assert.Equal(t, 2, calls)
	})

	t.Run("存在しないチャンネル名はエラーになる", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/conversations.list", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{
				"ok": true,
				"channels": [{"id": "C0000000001", "name": "random"}],
				"response_metadata": {"next_cursor": ""}
			}`)
		})

		repo := NewChannelRepository(newTestClient(t, mux), rate.NewLimiter(rate.Inf, 0), zaptest.NewLogger(t))

		_, err := repo.FindByName(context.Background(), "no-such-channel")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no-such-channel")
	})
}
