package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/younwookim/soulwave/internal/domain/event"
)

// MessageTypeSignal tags a forwarded simulation event
const MessageTypeSignal = "signal"

// Message is the envelope written to every spectator
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"` // Unix ms
}

// Client is a spectator connection. *websocket.Conn satisfies it.
type Client interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub fans simulation events out to spectators. OnEvent never blocks the
// simulation: when the queue is full the event is dropped.
type Hub struct {
	clients    map[Client]struct{}
	broadcast  chan Message
	register   chan Client
	unregister chan Client
	done       chan struct{}
	mutex      sync.RWMutex

	dropped int
}

// NewHub creates a hub with a broadcast queue of the given size
func NewHub(queue int) *Hub {
	return &Hub{
		clients:    make(map[Client]struct{}),
		broadcast:  make(chan Message, queue),
		register:   make(chan Client),
		unregister: make(chan Client),
		done:       make(chan struct{}),
	}
}

// Run serves register, unregister and broadcast requests until ctx is done.
// Run must be called at most once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c] = struct{}{}
			h.mutex.Unlock()
			log.Printf("[Hub] spectator joined (%d connected)", h.ClientCount())

		case c := <-h.unregister:
			h.remove(c)

		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

// Register adds a client. Requires Run. Once Run has returned the client is
// closed instead.
func (h *Hub) Register(c Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

// Unregister removes and closes a client. Requires Run. A no-op once Run has
// returned, since Run closes every client on exit.
func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// OnEvent forwards a simulation event to every spectator
func (h *Hub) OnEvent(e event.Event) {
	h.Broadcast(Message{
		Type:      MessageTypeSignal,
		Data:      e,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Broadcast queues msg without blocking, returns false if it was dropped
func (h *Hub) Broadcast(msg Message) bool {
	select {
	case h.broadcast <- msg:
		return true
	default:
		h.mutex.Lock()
		h.dropped++
		h.mutex.Unlock()
		return false
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Dropped returns how many messages were dropped on a full queue
func (h *Hub) Dropped() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.dropped
}

func (h *Hub) send(msg Message) {
	h.mutex.RLock()
	var failed []Client
	for c := range h.clients {
		if err := c.WriteJSON(msg); err != nil {
			log.Printf("[Hub] write failed: %v", err)
			failed = append(failed, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range failed {
		h.remove(c)
	}
}

func (h *Hub) remove(c Client) {
	h.mutex.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mutex.Unlock()
	if ok {
		_ = c.Close()
		log.Printf("[Hub] spectator left (%d connected)", h.ClientCount())
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.clients {
		_ = c.Close()
		delete(h.clients, c)
	}
}
