package concierge

import (
	"sync"
	"testing"
	"time"
)

func TestSequenceRunsStepsInOrder(t *testing.T) {
	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	StartSequence(
		Step{After: 5 * time.Millisecond, Run: func() {
			mu.Lock()
			order = append(order, 1)
			mu.Unlock()
		}},
		Step{After: 5 * time.Millisecond, Run: func() {
			mu.Lock()
			order = append(order, 2)
			mu.Unlock()
		}},
		Step{After: 5 * time.Millisecond, Run: func() {
			mu.Lock()
			order = append(order, 3)
			mu.Unlock()
			close(done)
		}},
	)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sequence did not finish in time")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("steps ran as %v, want [1 2 3]", order)
	}
}

func TestSequenceCancelStopsRemainingSteps(t *testing.T) {
	var mu sync.Mutex
	ran := 0
	first := make(chan struct{})

	seq := StartSequence(
		Step{After: 5 * time.Millisecond, Run: func() {
			mu.Lock()
			ran++
			mu.Unlock()
			close(first)
		}},
		Step{After: 30 * time.Millisecond, Run: func() {
			mu.Lock()
			ran++
			mu.Unlock()
		}},
	)

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first step did not run")
	}

	seq.Cancel()
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if ran != 1 {
		t.Errorf("ran = %d steps after cancel, want 1", ran)
	}
}

func TestSequenceCancelBeforeFirstStep(t *testing.T) {
	ran := make(chan struct{}, 1)

	seq := StartSequence(
		Step{After: 50 * time.Millisecond, Run: func() { ran <- struct{}{} }},
	)
	seq.Cancel()

	select {
	case <-ran:
		t.Error("step ran after immediate cancel")
	case <-time.After(150 * time.Millisecond):
	}
}
