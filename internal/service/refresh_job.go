// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noted Authors

package service

import (
	"time"

	"github.com/noted-app/noted/internal/logger"
)

// NoteCacheRefresher periodically drops the cached note list so the next
// read fetches fresh data from the server. It implements workers.Worker.
type NoteCacheRefresher struct {
	notes    NotesService
	interval time.Duration
	logger   *logger.Logger
	started  bool
	done     chan struct{}
	stopped  chan struct{}
}

// NewNoteCacheRefresher builds a refresher ticking at interval. A
// non-positive interval yields a worker whose Run is a no-op.
func NewNoteCacheRefresher(notes NotesService, interval time.Duration, l *logger.Logger) *NoteCacheRefresher {
	return &NoteCacheRefresher{
		notes:    notes,
		interval: interval,
		logger:   l.GetChildLogger(),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Run starts the background invalidation loop. It returns immediately; the
// loop runs in its own goroutine until Stop is called.
func (r *NoteCacheRefresher) Run() {
	if r.started {
		return
	}
	r.started = true

	if r.interval <= 0 {
		r.logger.Info().Msg("note cache refresher disabled")
		close(r.stopped)
		return
	}

	r.logger.Info().Dur("interval", r.interval).Msg("note cache refresher started")
	go func() {
		defer close(r.stopped)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.notes.Invalidate()
			case <-r.done:
				return
			}
		}
	}()
}

// Stop signals the loop to exit and waits for it to finish. Stopping a
// refresher that never ran is a no-op.
func (r *NoteCacheRefresher) Stop() {
	if !r.started {
		return
	}
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	<-r.stopped
}
