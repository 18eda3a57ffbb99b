package stream

import (
	"strings"
	"sync"
	"testing"
)

func feed(values ...string) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, v := range values {
			ch <- v
		}
	}()
	return ch
}

func TestMulticastBothSubscribersSeeEveryValue(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{name: "three fragments", values: []string{"Hel", "lo, ", "world"}},
		{name: "single fragment", values: []string{"x"}},
		{name: "empty stream", values: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMulticast(feed(tt.values...), 2)
			live := m.Subscribe()
			collect := m.Subscribe()

			var wg sync.WaitGroup
			var liveGot, collectGot []string
			wg.Add(2)
			go func() {
				defer wg.Done()
				for v := range live {
					liveGot = append(liveGot, v)
				}
			}()
			go func() {
				defer wg.Done()
				for v := range collect {
					collectGot = append(collectGot, v)
				}
			}()
			wg.Wait()

			if len(liveGot) != len(tt.values) {
				t.Fatalf("live subscriber got %d values, want %d", len(liveGot), len(tt.values))
			}
			if strings.Join(liveGot, "") != strings.Join(tt.values, "") {
				t.Errorf("live concatenation = %q, want %q", strings.Join(liveGot, ""), strings.Join(tt.values, ""))
			}
			if strings.Join(collectGot, "") != strings.Join(liveGot, "") {
				t.Errorf("collector saw %q, live saw %q", strings.Join(collectGot, ""), strings.Join(liveGot, ""))
			}
		})
	}
}

func TestMulticastDoesNotStartBeforeAllSubscribers(t *testing.T) {
	src := make(chan string, 1)
	src <- "early"
	close(src)

	m := NewMulticast(src, 2)
	first := m.Subscribe()

	// Nothing may be pumped yet: the second subscriber has not attached.
	select {
	case v, ok := <-first:
		if ok {
			t.Fatalf("received %q before second subscriber attached", v)
		}
		t.Fatal("channel closed before second subscriber attached")
	default:
	}

	second := m.Subscribe()
	if v := <-first; v != "early" {
		t.Errorf("first subscriber got %q, want %q", v, "early")
	}
	if v := <-second; v != "early" {
		t.Errorf("second subscriber got %q, want %q", v, "early")
	}
}

func TestMulticastSubscribeAfterStartPanics(t *testing.T) {
	m := NewMulticast(feed("a"), 1)
	m.Subscribe()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on late subscribe")
		}
	}()
	m.Subscribe()
}
