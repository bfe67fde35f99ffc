// Package events carries tracking change notifications from the API layer to
// any view that needs to re-read its day.
package events

import "sync"

// Kind identifies what happened to a tracking.
type Kind int

const (
	Started Kind = iota + 1
	Stopped
	Edited
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	case Edited:
		return "edited"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event describes one change. TrackingID is 0 when the affected row is unknown.
type Event struct {
	Kind       Kind
	TrackingID int64
}

// Bus fans events out to subscribers synchronously, in the publisher's goroutine.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[uint64]func(Event)
	nextID      uint64
}

func NewBus() *Bus {
	return &Bus{subscribers: map[uint64]func(Event){}}
}

// Subscribe registers fn and returns a function that removes it again.
// The returned function is safe to call more than once.
func (b *Bus) Subscribe(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
