package services

import (
	"sync"
	"time"
)

// ApplicationEvent is what the admin live feed sees when a submission lands.
// No applicant data crosses the socket, just enough to refresh a dashboard.
type ApplicationEvent struct {
	Kind       string    `json:"kind"`
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"received_at"`
}

// Feed fans application events out to websocket subscribers. Publish never
// blocks: a slow subscriber misses events rather than stalling submissions.
type Feed struct {
	mu   sync.Mutex
	subs map[chan ApplicationEvent]struct{}
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[chan ApplicationEvent]struct{})}
}

func (f *Feed) Subscribe() (<-chan ApplicationEvent, func()) {
	ch := make(chan ApplicationEvent, 16)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if _, ok := f.subs[ch]; ok {
			delete(f.subs, ch)
			close(ch)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}

func (f *Feed) Publish(event ApplicationEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
