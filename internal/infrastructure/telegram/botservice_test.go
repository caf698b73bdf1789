package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "helpdesk/internal/shared/config"
)

func TestBotService_SendMessage(t *testing.T) {
	type sendRequest struct {
		ChatID    int64  `json:"chat_id"`
		Text      string `json:"text"`
		ParseMode string `json:"parse_mode"`
	}

	var received []sendRequest
	var respond func(w http.ResponseWriter)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/sendMessage"))
		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received = append(received, req)
		respond(w)
	}))
	defer server.Close()

	svc := NewBotService(sharedConfig.TelegramConfig{
		BotToken:   "test-token",
		APIBaseURL: server.URL,
	})

	t.Run("posts html message to chat", func(t *testing.T) {
		received = nil
		respond = func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		}

		err := svc.SendMessage(42, "<b>hello</b>")
		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.Equal(t, int64(42), received[0].ChatID)
		assert.Equal(t, "<b>hello</b>", received[0].Text)
		assert.Equal(t, "HTML", received[0].ParseMode)
	})

	t.Run("splits long messages into chunks", func(t *testing.T) {
		received = nil
		respond = func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		}

		err := svc.SendMessage(42, strings.Repeat("a", maxMessageLength+10))
		require.NoError(t, err)
		assert.Len(t, received, 2)
	})

	t.Run("surfaces api errors", func(t *testing.T) {
		received = nil
		respond = func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
		}

		err := svc.SendMessage(42, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat not found")
	})
}

func TestSplitMessage(t *testing.T) {
	t.Run("short message is unchanged", func(t *testing.T) {
		chunks := splitMessage("hello", 100)
		assert.Equal(t, []string{"hello"}, chunks)
	})

	t.Run("prefers paragraph boundaries", func(t *testing.T) {
		text := strings.Repeat("a", 50) + "\n\n" + strings.Repeat("b", 60)
		chunks := splitMessage(text, 80)
		require.Len(t, chunks, 2)
		assert.True(t, strings.HasSuffix(chunks[0], "\n\n"))
		assert.Equal(t, strings.Repeat("b", 60), chunks[1])
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		text := strings.Repeat("日", 30)
		chunks := splitMessage(text, 20)
		require.Len(t, chunks, 2)
		assert.Equal(t, strings.Repeat("日", 20), chunks[0])
		assert.Equal(t, strings.Repeat("日", 10), chunks[1])
	})
}
