// Package telegram provides a simple client for sending notifications via Telegram.
//
// It allows creating a client with a bot token and sending messages to specified chat IDs.
// The CRM uses it to forward delayed-client notifications to a user's chat.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultAPIURL is the Telegram Bot API endpoint.
const DefaultAPIURL = "https://api.telegram.org"

// Client represents a Telegram client used to send notifications.
type Client struct {
	token   string       // bot token for authentication
	baseURL string       // API root, overridable for tests
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token string) *Client {
	return NewClientWithURL(token, DefaultAPIURL)
}

// NewClientWithURL creates a client talking to a different API root.
func NewClientWithURL(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

// Send sends a notification message to the specified Telegram chat ID.
//
// It constructs the request payload, sends an HTTP POST to the Telegram Bot API,
// and returns an error if the request fails or the API responds with a non-200 status.
func (c *Client) Send(to string, msg string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token) // telegram API URL

	reqBody := sendMessageRequest{
		ChatID: to,  // recipient chat id
		Text:   msg, // message text
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
