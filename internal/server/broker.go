package server

import (
	"encoding/json"
	"sync"

	"github.com/tmcalumni/aclstrainer/internal/engine"
)

// Broker fans engine snapshots out to SSE and WebSocket subscribers. The
// engine publishes one snapshot per processed event; the service owns a
// single session, so subscriptions are not keyed.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel receiving JSON-encoded snapshots.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends a snapshot to all subscribers.
func (b *Broker) Publish(snap engine.Snapshot) {
	data, _ := json.Marshal(snap)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
