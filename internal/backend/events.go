package backend

import "sync"

const subscriberBuffer = 32

// Hub fans session events out to subscribers. Each subscriber receives events
// in publish order on its own goroutine.
type Hub struct {
	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[*subscriber]struct{}{}}
}

type subscriber struct {
	hub  *Hub
	fn   func(Event)
	ch   chan Event
	done chan struct{}
	once sync.Once
}

// Subscribe registers fn. Events published after Subscribe returns are delivered.
func (h *Hub) Subscribe(fn func(Event)) Subscription {
	s := &subscriber{hub: h, fn: fn, ch: make(chan Event, subscriberBuffer), done: make(chan struct{})}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		s.once.Do(func() { close(s.done) })
		return s
	}
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	go s.loop()
	return s
}

func (s *subscriber) loop() {
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.ch:
			select {
			case <-s.done:
				return
			default:
			}
			s.fn(ev)
		}
	}
}

// Unsubscribe stops delivery. Pending events are dropped.
func (s *subscriber) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s)
		s.hub.mu.Unlock()
		close(s.done)
	})
}

// Publish delivers ev to every current subscriber. It blocks while a subscriber's
// buffer is full, which keeps ordering intact.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		select {
		case s.ch <- ev:
		case <-s.done:
		}
	}
}

// Close unsubscribes everyone. Later subscriptions are inert.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.closed = true
	h.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}
