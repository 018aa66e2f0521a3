package router

import (
	"strings"
	"sync"
)

// Segments splits a URL path into its non-empty path components.
// "/auth/login/" yields ["auth", "login"]; "/" yields an empty slice.
func Segments(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Stream publishes route changes to subscribers. Each subscriber holds at most
// one pending route; a newer route replaces an unread older one.
type Stream struct {
	mu      sync.Mutex
	current []string
	subs    map[*subscription]struct{}
	closed  bool
}

type subscription struct {
	ch chan []string
}

func NewStream(initial string) *Stream {
	return &Stream{
		current: Segments(initial),
		subs:    make(map[*subscription]struct{}),
	}
}

// Current returns the segments of the most recently published route.
func (s *Stream) Current() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.current...)
}

// Publish navigates to path and notifies every subscriber. It never blocks.
func (s *Stream) Publish(path string) {
	s.PublishSegments(Segments(path))
}

func (s *Stream) PublishSegments(segments []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.current = append([]string(nil), segments...)

	for sub := range s.subs {
		value := append([]string(nil), segments...)
		select {
		case sub.ch <- value:
		default:
			// drop the stale pending route; only publishers write, under s.mu
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- value
		}
	}
}

// Subscribe registers for routes. The current route is pending on the channel
// straight away, so a route published before or during Subscribe is never
// missed. The returned cancel func closes the channel and is safe to call
// more than once.
func (s *Stream) Subscribe() (<-chan []string, func()) {
	sub := &subscription{ch: make(chan []string, 1)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	sub.ch <- append([]string(nil), s.current...)
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subs[sub]; ok {
				delete(s.subs, sub)
				close(sub.ch)
			}
		})
	}
}

// Close completes every subscription. Later publishes are ignored.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for sub := range s.subs {
		delete(s.subs, sub)
		close(sub.ch)
	}
}

// Static returns a source that never emits; its subscription is completed
// only by cancel. Used where the route is fixed for the lifetime of a view.
func Static() *StaticSource {
	return &StaticSource{}
}

type StaticSource struct{}

func (StaticSource) Subscribe() (<-chan []string, func()) {
	ch := make(chan []string)
	var once sync.Once
	return ch, func() { once.Do(func() { close(ch) }) }
}
