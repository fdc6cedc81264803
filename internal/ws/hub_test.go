package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialConn sets up a registered server-side connection and returns the
// client end for reading.
func dialConn(t *testing.T, hub *Hub, party notification.PartyType, id uint) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Register(party, id, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHubPublishReachesRecipient(t *testing.T) {
	hub := NewHub()
	client := dialConn(t, hub, notification.PartyVendor, 2)

	// Registration happens in the server handler; give it a beat.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(notification.PartyVendor, 2, &notification.Notification{
		ID:      7,
		Message: "hello",
	})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got notification.Notification
	if err := client.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ID != 7 || got.Message != "hello" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestHubPublishSkipsOtherRecipients(t *testing.T) {
	hub := NewHub()
	other := dialConn(t, hub, notification.PartyVendor, 3)

	time.Sleep(50 * time.Millisecond)

	hub.Publish(notification.PartyVendor, 2, &notification.Notification{ID: 8})

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if err := other.ReadJSON(&notification.Notification{}); err == nil {
		t.Fatal("recipient 3 should not receive recipient 2's notification")
	}
}

func TestHubPublishDoesNotBlockOnStalledListener(t *testing.T) {
	hub := NewHub()
	// Registered but never read from: simulates a peer that stopped
	// draining its socket.
	dialConn(t, hub, notification.PartyVendor, 4)

	time.Sleep(50 * time.Millisecond)

	payload := strings.Repeat("x", 1<<20)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			hub.Publish(notification.PartyVendor, 4, &notification.Notification{
				ID:      uint(i + 1),
				Message: payload,
			})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publish blocked on a listener that stopped reading")
	}
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	srvConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(notification.PartyVendor, 2, conn)
		srvConns <- conn
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	conn := <-srvConns
	hub.Unregister(notification.PartyVendor, 2, conn)

	hub.Publish(notification.PartyVendor, 2, &notification.Notification{ID: 9})

	client.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if err := client.ReadJSON(&notification.Notification{}); err == nil {
		t.Fatal("unregistered connection should not receive pushes")
	}
}
