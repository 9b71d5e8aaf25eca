// Package notify is the in-process change-notification channel. Publishing a
// topic synchronously invokes every subscriber so dependent components can
// re-fetch their collection before the mutating call returns. It is the only
// cross-component signaling mechanism the core relies on for correctness;
// anything crossing process boundaries is best effort and lives in the
// rabbitmq adapter.
package notify

import "sync"

const (
	TopicMenuUpdated   = "menu-updated"
	TopicOrdersUpdated = "orders-updated"
)

type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[string]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for topic and returns an unsubscribe func. fn runs
// on the publisher's goroutine and must not block.
func (b *Bus) Subscribe(topic string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

func (b *Bus) Publish(topic string) {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
