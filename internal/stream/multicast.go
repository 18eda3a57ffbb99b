// Package stream provides the shared-source primitive behind the chat
// relay/aggregator pair: one upstream channel consumed exactly once and
// observed by a fixed number of downstream subscribers.
package stream

import "sync"

// Multicast fans a single source channel out to a fixed number of
// subscribers. The source is hot-but-lazy: pumping starts only once the
// expected number of subscribers have attached, so no subscriber can miss a
// fragment. Every subscriber receives every value in source order; sends
// block, trading throughput for the no-drop guarantee.
type Multicast[T any] struct {
	src    <-chan T
	expect int

	mu      sync.Mutex
	subs    []chan T
	started bool
}

// NewMulticast wraps src for fan-out to expect subscribers. expect must be
// at least 1.
func NewMulticast[T any](src <-chan T, expect int) *Multicast[T] {
	if expect < 1 {
		expect = 1
	}
	return &Multicast[T]{src: src, expect: expect}
}

// Subscribe attaches one subscriber and returns its channel. The channel is
// closed when the source is exhausted. Once the expected subscriber count is
// reached the pump starts; subscribing after that point panics, because a
// late subscriber would violate the no-drop contract.
func (m *Multicast[T]) Subscribe() <-chan T {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		panic("stream: subscribe after multicast started")
	}
	ch := make(chan T, 16)
	m.subs = append(m.subs, ch)
	start := len(m.subs) == m.expect
	if start {
		m.started = true
	}
	m.mu.Unlock()

	if start {
		go m.pump()
	}
	return ch
}

func (m *Multicast[T]) pump() {
	defer func() {
		for _, ch := range m.subs {
			close(ch)
		}
	}()
	for v := range m.src {
		for _, ch := range m.subs {
			ch <- v
		}
	}
}
