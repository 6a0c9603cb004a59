package tracking

import (
	"sync"
	"time"

	"github.com/vedantwpatil/autoclicker/internal/geometry"
)

// Script is a deterministic stand-in for the real pointer.
// Pointer returns the samples in order and keeps returning the last one once
// they run out. Clicks and sleeps are recorded instead of performed.
type Script struct {
	// Delay makes Sleep actually block, zero means return at once
	Delay time.Duration
	// OnSleep runs before every Sleep with the 1-based sleep count
	OnSleep func(n int)

	mu      sync.Mutex
	samples []geometry.Point
	reads   int
	clicks  []geometry.Point
	sleeps  []time.Duration
}

func NewScript(samples ...geometry.Point) *Script {
	return &Script{samples: samples}
}

func (s *Script) Pointer() geometry.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if len(s.samples) == 0 {
		return geometry.Point{}
	}
	i := min(s.reads, len(s.samples)) - 1
	return s.samples[i]
}

// Click records the position of the most recent read
func (s *Script) Click() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var at geometry.Point
	if len(s.samples) > 0 && s.reads > 0 {
		at = s.samples[min(s.reads, len(s.samples))-1]
	}
	s.clicks = append(s.clicks, at)
}

func (s *Script) Sleep(d time.Duration) {
	s.mu.Lock()
	s.sleeps = append(s.sleeps, d)
	n := len(s.sleeps)
	s.mu.Unlock()

	if s.OnSleep != nil {
		s.OnSleep(n)
	}
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
}

func (s *Script) Clicks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clicks)
}

// ClickedAt returns where each click happened
func (s *Script) ClickedAt() []geometry.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]geometry.Point(nil), s.clicks...)
}

func (s *Script) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Script) Sleeps() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.sleeps...)
}
