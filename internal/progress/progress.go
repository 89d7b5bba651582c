// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package progress provides periodic logging of the animation loop cadence
// so long headless runs show signs of life without flooding the log.
package progress

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of the update and render cadence of the
// animation loop.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate counts between log statements.
	updates uint64
	renders uint64
}

// New returns a new cadence logger for the provided action verb.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// AddUpdate records one accepted update tick.
func (l *Logger) AddUpdate() {
	l.Lock()
	l.updates++
	l.Unlock()
}

// AddRender records one rendered frame.
func (l *Logger) AddRender() {
	l.Lock()
	l.renders++
	l.Unlock()
}

// LogProgress periodically (every 10 seconds) logs an information message
// with the update and render counts accumulated since the previous message.
//
// The force flag may be used to force a log message to be shown regardless
// of the time the last one was shown.
func (l *Logger) LogProgress(force bool) {
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !force && duration < time.Second*10 {
		return
	}

	updateRate := float64(l.updates) / duration.Seconds()
	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d %s, %0.1f "+
		"updates/s)", l.progressAction,
		l.updates, pickNoun(l.updates, "update", "updates"),
		duration.Seconds(),
		l.renders, pickNoun(l.renders, "frame", "frames"),
		updateRate)

	l.updates = 0
	l.renders = 0
	l.lastLogTime = now
}
