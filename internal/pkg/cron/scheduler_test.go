package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceExecutesJobsInOrder(t *testing.T) {
	s := NewScheduler()
	var calls []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		calls = append(calls, "second")
		return errors.New("boom")
	})
	s.AddJob("third", time.Hour, func(ctx context.Context) error {
		calls = append(calls, "third")
		return nil
	})

	s.RunOnce(context.Background())

	// A failing job never blocks the ones after it.
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

type stubSweeper struct {
	removed int
	sweeps  int
}

func (s *stubSweeper) Sweep() int {
	s.sweeps++
	return s.removed
}

func (s *stubSweeper) SessionCount() int { return 0 }

func TestRegisterSelectionSweepRunsSweeper(t *testing.T) {
	s := NewScheduler()
	sweeper := &stubSweeper{removed: 2}
	RegisterSelectionSweep(s, sweeper, time.Hour)

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, 2, sweeper.sweeps)
}
