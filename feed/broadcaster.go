// Package feed fans events out to connected server-sent-event clients.
// The posts package publishes every newly created post here, and
// GET /api/posts/stream relays them to browsers.
package feed

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

const clientBuffer = 32

// client is one connected listener. Its channel is closed on removal.
type client struct {
	events chan Event
}

// Broadcaster keeps the set of connected clients.
// Publishing never blocks: a client whose buffer is full misses the event.
type Broadcaster struct {
	clients map[string]*client
	closed  bool
	mu      sync.RWMutex
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[string]*client),
	}
}

// Subscribe registers a new client and returns its id and event channel.
func (b *Broadcaster) Subscribe() (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clientID := uuid.New().String()
	c := &client{events: make(chan Event, clientBuffer)}
	if b.closed {
		close(c.events)
		return clientID, c.events
	}
	b.clients[clientID] = c
	log.Printf("feed: client %s subscribed", clientID)

	return clientID, c.events
}

// Unsubscribe removes the client and closes its channel. Unknown ids are ignored.
func (b *Broadcaster) Unsubscribe(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.clients[clientID]; ok {
		close(c.events)
		delete(b.clients, clientID)
		log.Printf("feed: client %s unsubscribed", clientID)
	}
}

// Publish sends event to every connected client and reports how many received it.
func (b *Broadcaster) Publish(event Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, c := range b.clients {
		select {
		case c.events <- event:
			delivered++
		default:
			log.Printf("feed: dropping event for client %s: buffer full", id)
		}
	}
	return delivered
}

// Count returns the number of connected clients.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every client. Streams waiting on their channel see it
// closed and return, which lets the HTTP server finish shutting down.
// Later subscribers get an already closed channel.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, c := range b.clients {
		close(c.events)
		delete(b.clients, id)
	}
}
