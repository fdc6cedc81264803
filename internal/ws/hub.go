package ws

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Hub fans committed notifications out to live websocket listeners,
// keyed by recipient. Pushes are best-effort: each connection has one
// writer goroutine draining a buffered queue, so a listener that stops
// reading is evicted instead of blocking the publisher. Clients recover
// missed pushes through the list endpoint.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]*listener
}

// listener owns all writes to its connection. The websocket package
// allows at most one concurrent writer per connection.
type listener struct {
	conn *websocket.Conn
	send chan *notification.Notification
	stop chan struct{}
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]*listener)}
}

func key(t notification.PartyType, id uint) string {
	return fmt.Sprintf("%s:%d", t, id)
}

func (h *Hub) Register(t notification.PartyType, id uint, conn *websocket.Conn) {
	l := &listener{
		conn: conn,
		send: make(chan *notification.Notification, sendBuffer),
		stop: make(chan struct{}),
	}

	h.mu.Lock()
	k := key(t, id)
	if h.conns[k] == nil {
		h.conns[k] = make(map[*websocket.Conn]*listener)
	}
	h.conns[k][conn] = l
	h.mu.Unlock()

	go h.writeLoop(t, id, l)
}

func (h *Hub) Unregister(t notification.PartyType, id uint, conn *websocket.Conn) {
	h.mu.Lock()
	k := key(t, id)
	l := h.conns[k][conn]
	delete(h.conns[k], conn)
	if len(h.conns[k]) == 0 {
		delete(h.conns, k)
	}
	h.mu.Unlock()

	if l != nil {
		l.once.Do(func() { close(l.stop) })
	}
}

// Publish queues the notification for every listener of the recipient.
// It never blocks on a connection: a listener whose queue is full has
// stopped draining it and gets evicted.
func (h *Hub) Publish(t notification.PartyType, id uint, n *notification.Notification) {
	h.mu.RLock()
	k := key(t, id)
	targets := make([]*listener, 0, len(h.conns[k]))
	for _, l := range h.conns[k] {
		targets = append(targets, l)
	}
	h.mu.RUnlock()

	for _, l := range targets {
		select {
		case l.send <- n:
		default:
			h.evict(t, id, l)
		}
	}
}

func (h *Hub) writeLoop(t notification.PartyType, id uint, l *listener) {
	for {
		select {
		case <-l.stop:
			return
		case n := <-l.send:
			l.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := l.conn.WriteJSON(n); err != nil {
				h.evict(t, id, l)
				return
			}
		}
	}
}

func (h *Hub) evict(t notification.PartyType, id uint, l *listener) {
	l.conn.Close()
	h.Unregister(t, id, l.conn)
}
