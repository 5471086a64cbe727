package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerNonOverlapping(t *testing.T) {
	var inFlight, maxInFlight, runs int32

	task := func(ctx context.Context) error {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			m := atomic.LoadInt32(&maxInFlight)
			if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
				break
			}
		}
		atomic.AddInt32(&runs, 1)
		// Slower than the interval: every other boundary must be skipped.
		time.Sleep(50 * time.Millisecond)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	New(20*time.Millisecond, 0, task).Run(ctx)

	if got := atomic.LoadInt32(&maxInFlight); got != 1 {
		t.Errorf("expected at most one pipeline in flight, saw %d", got)
	}
	// 300ms of 20ms boundaries is 15 ticks if every one fired; with a 50ms
	// task and skipped boundaries the count must stay well below that.
	if got := atomic.LoadInt32(&runs); got < 2 || got > 8 {
		t.Errorf("unexpected run count %d", got)
	}
}

func TestSchedulerFirstTickImmediate(t *testing.T) {
	ran := make(chan struct{}, 1)
	task := func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s := New(time.Hour, 0, task)
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("first tick did not fire immediately")
	}
	cancel()
	<-done

	if s.State() != StateStopped {
		t.Errorf("expected stopped state, got %v", s.State())
	}
}

func TestSchedulerSurvivesFailingTicks(t *testing.T) {
	var runs int32
	task := func(ctx context.Context) error {
		n := atomic.AddInt32(&runs, 1)
		if n == 1 {
			return errors.New("boom")
		}
		if n == 2 {
			panic("worse")
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	New(20*time.Millisecond, 0, task).Run(ctx)

	if atomic.LoadInt32(&runs) < 3 {
		t.Errorf("failing ticks must not stop the schedule, got %d runs", runs)
	}
}

func TestSchedulerDeadline(t *testing.T) {
	var runs int32
	task := func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}

	start := time.Now()
	New(10*time.Millisecond, 50*time.Millisecond, task).Run(context.Background())
	elapsed := time.Since(start)

	if elapsed > 500*time.Millisecond {
		t.Errorf("deadline did not stop the scheduler, ran for %v", elapsed)
	}
	if atomic.LoadInt32(&runs) == 0 {
		t.Error("expected at least the immediate first tick")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateStopped, "stopped"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
