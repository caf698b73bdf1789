package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sharedConfig "helpdesk/internal/shared/config"
)

const defaultAPIBaseURL = "https://api.telegram.org"

// BotService provides Telegram Bot API operations
type BotService struct {
	config     sharedConfig.TelegramConfig
	httpClient *http.Client
	baseURL    string
}

// NewBotService creates a new Telegram bot service. The API base URL is
// configurable so tests can point it at a local server.
func NewBotService(config sharedConfig.TelegramConfig) *BotService {
	apiBase := config.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}

	return &BotService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("%s/bot%s", apiBase, config.BotToken),
	}
}

// SendMessage sends an HTML formatted message to a chat. Messages longer
// than Telegram's limit are split and delivered in order.
func (s *BotService) SendMessage(chatID int64, text string) error {
	url := fmt.Sprintf("%s/sendMessage", s.baseURL)

	for _, chunk := range splitMessage(text, maxMessageLength) {
		body := map[string]any{
			"chat_id":    chatID,
			"text":       chunk,
			"parse_mode": "HTML",
		}
		if err := s.makeRequest(url, body); err != nil {
			return err
		}
	}

	return nil
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *BotService) makeRequest(url string, body map[string]any) error {
	var req *http.Request
	var err error

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		req, err = http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(http.MethodPost, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}
