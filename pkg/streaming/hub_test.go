package streaming

import (
	"testing"
	"time"
)

func newTestClient() *Client {
	return &Client{
		send: make(chan []byte, 16),
		subscriptions: map[EventType]bool{
			EventTypeOpportunity: true,
			EventTypeQuota:       true,
		},
	}
}

func TestSubscriptionFiltering(t *testing.T) {
	c := newTestClient()

	if !c.isSubscribed(EventTypeOpportunity) {
		t.Error("expected opportunity subscription")
	}
	if c.isSubscribed(EventTypeScan) {
		t.Error("unexpected scan subscription")
	}

	c.handleMessage([]byte(`{"type":"subscribe","events":["scan"]}`))
	if !c.isSubscribed(EventTypeScan) {
		t.Error("subscribe message did not take effect")
	}

	c.handleMessage([]byte(`{"type":"unsubscribe","events":["opportunity"]}`))
	if c.isSubscribed(EventTypeOpportunity) {
		t.Error("unsubscribe message did not take effect")
	}

	// Garbage input is ignored.
	c.handleMessage([]byte(`not json`))
	if !c.isSubscribed(EventTypeQuota) {
		t.Error("malformed message changed subscriptions")
	}
}

func TestBroadcastRespectsSubscriptions(t *testing.T) {
	h := NewHub()

	sub := newTestClient()
	sub.hub = h
	unsub := &Client{
		hub:           h,
		send:          make(chan []byte, 16),
		subscriptions: map[EventType]bool{},
	}
	h.clients[sub] = true
	h.clients[unsub] = true

	h.broadcastEvent(Event{
		Type:      EventTypeOpportunity,
		Timestamp: time.Now(),
		Data:      map[string]string{"league": "nba"},
	})

	select {
	case <-sub.send:
	default:
		t.Error("subscribed client received nothing")
	}
	select {
	case msg := <-unsub.send:
		t.Errorf("unsubscribed client received %s", msg)
	default:
	}
}

func TestClientCountObserver(t *testing.T) {
	h := NewHub()
	counts := make(chan int, 4)
	h.OnClientCount(func(n int) { counts <- n })

	go h.Run()

	c := newTestClient()
	c.hub = h
	h.register <- c

	select {
	case n := <-counts:
		if n != 1 {
			t.Errorf("observed %d clients after register, want 1", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no observation after register")
	}

	h.unregister <- c

	select {
	case n := <-counts:
		if n != 0 {
			t.Errorf("observed %d clients after unregister, want 0", n)
		}
	case <-time.After(time.Second):
		t.Fatal("no observation after unregister")
	}
}

func TestClientCount(t *testing.T) {
	h := NewHub()
	if h.ClientCount() != 0 {
		t.Errorf("ClientCount = %d, want 0", h.ClientCount())
	}
	h.clients[newTestClient()] = true
	if h.ClientCount() != 1 {
		t.Errorf("ClientCount = %d, want 1", h.ClientCount())
	}
}
