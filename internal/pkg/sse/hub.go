package sse

import (
	"sync"
)

// Event represents an SSE event pushed to open boards. Team scopes delivery;
// an empty team reaches every subscriber. Version is a per-team monotonic
// counter stamped on publish so clients can detect missed refreshes.
type Event struct {
	Team    string
	Event   string
	Version int64
	Data    interface{}
}

// Hub manages board subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	versions    map[string]int64
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		versions:    make(map[string]int64),
	}
}

// Subscribe registers a new subscriber for a team and returns the event
// channel and cleanup function
func (h *Hub) Subscribe(team string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[team] == nil {
		h.subscribers[team] = make(map[chan Event]struct{})
	}
	h.subscribers[team][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[team], ch)
		close(ch)
		if len(h.subscribers[team]) == 0 {
			delete(h.subscribers, team)
		}
	}

	return ch, cleanup
}

// Publish sends an event to a team's subscribers; an empty team broadcasts
// to everyone.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.versions[event.Team]++
	event.Version = h.versions[event.Team]

	for team, subs := range h.subscribers {
		if event.Team != "" && team != "" && team != event.Team {
			continue
		}
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a team
func (h *Hub) SubscriberCount(team string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[team]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the total number of active subscribers
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
