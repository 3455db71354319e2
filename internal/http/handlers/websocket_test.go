package handlers

import (
	"testing"
	"time"
)

func newHubClient(h *WebSocketHandler, sellerID string) *WebSocketClient {
	return &WebSocketClient{
		sellerID: sellerID,
		send:     make(chan WebSocketMessage, 8),
		hub:      h.hub,
	}
}

func waitForClients(t *testing.T, h *WebSocketHandler, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.GetConnectedClients() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d connected clients, got %d", want, h.GetConnectedClients())
}

func receiveMessage(t *testing.T, c *WebSocketClient) WebSocketMessage {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hub message")
		return WebSocketMessage{}
	}
}

func TestHubBroadcastIsSellerScoped(t *testing.T) {
	h := NewWebSocketHandler(nil, nil)

	cafe := newHubClient(h, "seller-cafe")
	matcha := newHubClient(h, "seller-matcha")
	h.hub.register <- cafe
	h.hub.register <- matcha
	waitForClients(t, h, 2)

	// Both get the welcome frame on registration
	if msg := receiveMessage(t, cafe); msg.Type != "connection" {
		t.Fatalf("expected connection welcome, got %q", msg.Type)
	}
	if msg := receiveMessage(t, matcha); msg.Type != "connection" {
		t.Fatalf("expected connection welcome, got %q", msg.Type)
	}

	h.BroadcastToSeller("seller-cafe", "order_click", map[string]string{"listing": "espresso"})

	msg := receiveMessage(t, cafe)
	if msg.Type != "order_click" {
		t.Fatalf("expected order_click, got %q", msg.Type)
	}
	if msg.SellerID != "seller-cafe" {
		t.Fatalf("expected seller-cafe scope, got %q", msg.SellerID)
	}

	// The other store must not see it
	select {
	case stray := <-matcha.send:
		t.Fatalf("unexpected message for other seller: %q", stray.Type)
	case <-time.After(100 * time.Millisecond):
	}

	h.hub.unregister <- matcha
	waitForClients(t, h, 1)

	h.hub.unregister <- cafe
	waitForClients(t, h, 0)
}
