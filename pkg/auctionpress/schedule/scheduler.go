// Package schedule drives the publish pipeline on a fixed, non-overlapping
// interval.
package schedule

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
)

// State is the scheduler's lifecycle state.
type State int32

const (
	// StateIdle means the scheduler is between ticks.
	StateIdle State = iota
	// StateRunning means a tick's pipeline is executing.
	StateRunning
	// StateStopped means no further ticks will fire.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Task is one full pipeline execution. A returned error is logged, never
// propagated, so one failed tick cannot prevent the next.
type Task func(ctx context.Context) error

// Scheduler runs a Task every interval with at most one execution in flight.
// Ticks execute synchronously in the scheduler's own loop; a boundary that
// passes while a tick is still running is absorbed, not caught up.
type Scheduler struct {
	interval time.Duration
	runFor   time.Duration
	task     Task
	logger   *logrus.Logger
	state    atomic.Int32
}

// New builds a scheduler. runFor bounds the total lifetime; zero means run
// until the context is cancelled.
func New(interval, runFor time.Duration, task Task) *Scheduler {
	return &Scheduler{
		interval: interval,
		runFor:   runFor,
		task:     task,
		logger:   config.GetLogger(),
	}
}

// State reports the current lifecycle state.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Run blocks until the context is cancelled or the configured lifetime
// elapses. The first tick fires immediately. An in-flight tick always runs to
// completion before Run returns.
func (s *Scheduler) Run(ctx context.Context) {
	if s.runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.runFor)
		defer cancel()
	}
	defer func() {
		s.state.Store(int32(StateStopped))
		s.logger.WithFields(logrus.Fields{"module": "schedule"}).Info("scheduler stopped")
	}()

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
			// Absorb a boundary that fired while the tick was running so
			// execution resumes at the following boundary.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

// tick executes one pipeline run, containing both errors and panics.
func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	s.state.Store(int32(StateRunning))
	defer s.state.Store(int32(StateIdle))

	start := time.Now()
	err := s.runTask(ctx)
	fields := logrus.Fields{
		"module":  "schedule",
		"elapsed": time.Since(start).String(),
	}
	if err != nil {
		s.logger.WithFields(fields).Error("tick failed: " + err.Error())
		return
	}
	s.logger.WithFields(fields).Info("tick finished")
}

func (s *Scheduler) runTask(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panicked: %v", r)
		}
	}()
	return s.task(ctx)
}
