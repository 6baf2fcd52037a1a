// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// startHub runs a hub behind a test server and returns the ws:// URL.
func startHub(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForClients polls until the hub has registered the expected number
// of subscribers; dialing returns before the server side finishes
// registration.
func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("Failed to decode event %s: %v", raw, err)
	}
	return ev
}

func TestPublishReachesSubscriberInOrder(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	hub.Publish("noteAdded", map[string]string{"id": "n1", "text": "hi"})
	hub.Publish("noteDeleted", "n1")

	first := readEvent(t, conn)
	if first.Event != "noteAdded" {
		t.Errorf("Expected noteAdded first, got %s", first.Event)
	}
	payload, ok := first.Payload.(map[string]any)
	if !ok {
		t.Fatalf("Expected object payload, got %T", first.Payload)
	}
	if payload["id"] != "n1" || payload["text"] != "hi" {
		t.Errorf("Unexpected payload %+v", payload)
	}

	second := readEvent(t, conn)
	if second.Event != "noteDeleted" {
		t.Errorf("Expected noteDeleted second, got %s", second.Event)
	}
	if second.Payload != "n1" {
		t.Errorf("Expected id payload, got %v", second.Payload)
	}
}

func TestAllSubscribersReceiveEveryEvent(t *testing.T) {
	hub, url := startHub(t)
	connA := dial(t, url)
	connB := dial(t, url)
	waitForClients(t, hub, 2)

	hub.Publish("photoDeleted", "p1")

	for _, conn := range []*websocket.Conn{connA, connB} {
		ev := readEvent(t, conn)
		if ev.Event != "photoDeleted" || ev.Payload != "p1" {
			t.Errorf("Unexpected event %+v", ev)
		}
	}
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	hub, url := startHub(t)
	early := dial(t, url)
	waitForClients(t, hub, 1)

	hub.Publish("noteAdded", map[string]string{"id": "before"})
	// Make sure the first event is already delivered before connecting.
	if ev := readEvent(t, early); ev.Event != "noteAdded" {
		t.Fatalf("Expected noteAdded, got %s", ev.Event)
	}

	late := dial(t, url)
	waitForClients(t, hub, 2)

	hub.Publish("noteAdded", map[string]string{"id": "after"})

	ev := readEvent(t, late)
	payload, ok := ev.Payload.(map[string]any)
	if !ok {
		t.Fatalf("Expected object payload, got %T", ev.Payload)
	}
	if payload["id"] != "after" {
		t.Errorf("Late subscriber saw replayed event: %+v", payload)
	}

	// No history means nothing else is queued for the late subscriber.
	late.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := late.ReadMessage(); err == nil {
		t.Error("Expected no further events for late subscriber")
	}
}

func TestDisconnectedClientIsDropped(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing with no subscribers must not block or panic.
	hub.Publish("noteDeleted", "n1")
}
