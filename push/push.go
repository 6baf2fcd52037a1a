// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Dispatcher delivers one push notification to one device token.
// Errors are transport-level and retryable; the scheduler retries on
// its next scan.
type Dispatcher interface {
	Dispatch(token, title, body string) error
}

type message struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Gateway posts notifications to an Expo-style push endpoint. The token
// is the opaque delivery address the client registered with its reminder.
type Gateway struct {
	url    string
	client *http.Client
}

func NewGateway(url string) *Gateway {
	return &Gateway{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *Gateway) Dispatch(token, title, body string) error {
	payload, err := json.Marshal(message{To: token, Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("encode push message: %w", err)
	}

	resp, err := g.client.Post(g.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push dispatch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push dispatch: gateway returned %s", resp.Status)
	}
	return nil
}
