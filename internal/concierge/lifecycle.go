package concierge

import (
	"sync"
	"time"
)

// Step is one timed action in a sequence. After is measured from the end of
// the previous step.
type Step struct {
	After time.Duration
	Run   func()
}

// Sequence runs ordered timed steps and cancels as a unit: once Cancel
// returns, no further step fires.
type Sequence struct {
	mu        sync.Mutex
	steps     []Step
	next      int
	timer     *time.Timer
	cancelled bool
}

// StartSequence schedules the steps and returns immediately.
func StartSequence(steps ...Step) *Sequence {
	s := &Sequence{steps: steps}
	s.mu.Lock()
	s.schedule()
	s.mu.Unlock()
	return s
}

// Cancel stops the sequence. Safe to call more than once.
func (s *Sequence) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

// schedule arms the timer for the next step. Caller holds mu.
func (s *Sequence) schedule() {
	if s.cancelled || s.next >= len(s.steps) {
		return
	}
	step := s.steps[s.next]
	s.next++
	s.timer = time.AfterFunc(step.After, func() {
		s.mu.Lock()
		if s.cancelled {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		step.Run()

		s.mu.Lock()
		s.schedule()
		s.mu.Unlock()
	})
}
