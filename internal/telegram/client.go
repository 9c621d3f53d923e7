// Package telegram delivers portal notifications through the Telegram Bot
// API.
//
// This package handles:
//   - Alerting officials when a High priority complaint arrives
//   - Delivering the scheduled admin report (text + rendered PNG table)
//
// Notifications are best effort: a failed send is logged by the caller and
// never blocks or fails the citizen-facing operation that triggered it.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"nivaran/internal/complaint"
	"nivaran/internal/httpx"
)

// Client represents a Telegram bot client.
//
// Fields:
//   - BotToken: Telegram bot API token
//   - ChatID: Target chat ID for notifications
//   - DebugMode: If true, skip actual API calls (for testing)
type Client struct {
	BotToken  string
	ChatID    string
	DebugMode bool
}

// New creates a Telegram client. Returns nil when the token or chat id is
// missing so callers can treat notifications as disabled.
func New(botToken, chatID string, debug bool) *Client {
	if botToken == "" || chatID == "" {
		log.Println("⚠️  Telegram not configured. Notifications disabled.")
		return nil
	}
	return &Client{BotToken: botToken, ChatID: chatID, DebugMode: debug}
}

// message is the sendMessage request payload.
type message struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// apiResponse is the minimal Bot API response envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// SendMessage sends a plain-text message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if c == nil {
		return nil
	}
	if c.DebugMode {
		log.Println("🔧 [DEBUG] Would send Telegram message:", text)
		return nil
	}

	payload, err := json.Marshal(message{ChatID: c.ChatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", c.BotToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// SendComplaintAlert notifies officials about a new High priority complaint.
func (c *Client) SendComplaintAlert(ctx context.Context, rec complaint.Record) error {
	if c == nil {
		return nil
	}
	text := fmt.Sprintf(
		"🚨 High priority complaint #%d\nSector: %s\nPincode: %s\n\n%s",
		rec.ID, rec.Sector, rec.Pincode, rec.Description,
	)
	return c.SendMessage(ctx, text)
}

// SendPhoto uploads a PNG image with a caption to the configured chat.
//
// Used by the scheduled report to deliver the rendered complaint table.
func (c *Client) SendPhoto(ctx context.Context, caption string, png []byte) error {
	if c == nil {
		return nil
	}
	if c.DebugMode {
		log.Printf("🔧 [DEBUG] Would send Telegram photo (%d bytes): %s", len(png), caption)
		return nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", c.ChatID); err != nil {
		return fmt.Errorf("failed to write chat_id field: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return fmt.Errorf("failed to write caption field: %w", err)
	}
	part, err := writer.CreateFormFile("photo", "report.png")
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := part.Write(png); err != nil {
		return fmt.Errorf("failed to write photo bytes: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendPhoto", c.BotToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// do executes a Bot API request and decodes the response envelope.
func (c *Client) do(req *http.Request) error {
	resp, err := httpx.Client().Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("failed to parse telegram response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram API error: %s", apiResp.Description)
	}
	return nil
}
