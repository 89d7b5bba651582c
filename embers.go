// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/emberlab/embers/internal/frame"
	"github.com/emberlab/embers/internal/host"
	"github.com/emberlab/embers/internal/progress"
	"github.com/emberlab/embers/internal/sim"
	"github.com/emberlab/embers/internal/version"
	"github.com/emberlab/embers/prng"
	"github.com/emberlab/embers/tempo"
)

var cfg *config

// loopYield is how long the main loop sleeps each cycle while neither the
// update nor the render gate is due.  It trades a little tick jitter for not
// spinning a core.
const loopYield = 500 * time.Microsecond

// newSource returns the simulation PRNG source: deterministically seeded
// when a fixed seed was configured and seeded from OS entropy otherwise.
func newSource() (*prng.Source, error) {
	if cfg.Seed != 0 {
		embersLog.Infof("Using fixed PRNG seed %d", cfg.Seed)
		return prng.NewSeededSource(cfg.Seed), nil
	}
	src, err := prng.NewSource()
	if err != nil {
		return nil, fmt.Errorf("failed to seed PRNG from OS entropy: %w", err)
	}
	return src, nil
}

// runLoop drives the animation until the host requests shutdown, the
// configured run duration elapses, or the context is canceled.
//
// Each cycle pumps host events, then passes the two tick-limiter gates
// independently: simulation updates advance at the configured tick rate
// while frames render at the configured frame rate, each receiving the
// elapsed time since its own previous tick as the delta.
func runLoop(ctx context.Context, h host.Host, field *sim.Field,
	buf *frame.Buffer) error {

	updateLimiter := tempo.NewTickLimiter(cfg.TickRate)
	renderLimiter := tempo.NewTickLimiter(cfg.FrameRate)
	cadence := progress.New("Animated", progLog)
	runClock := tempo.StartStopwatch()

	for !shutdownRequested(ctx) {
		if !h.PumpEvents() {
			embersLog.Debug("Host requested shutdown")
			break
		}
		if cfg.Duration > 0 && runClock.Split() >= tempo.Duration(cfg.Duration) {
			embersLog.Infof("Run duration %v elapsed", cfg.Duration)
			break
		}

		if updateLimiter.ShouldTick() {
			delta := updateLimiter.SinceLastTick()
			if updateLimiter.TickMissed() {
				embersLog.Tracef("Update running behind: %v since last tick",
					delta)
			}
			field.Update()
			updateLimiter.Tick()
			cadence.AddUpdate()
		}

		if renderLimiter.ShouldTick() {
			sw := tempo.StartStopwatch()
			field.Render(buf)
			if err := h.Present(buf); err != nil {
				return err
			}
			renderLimiter.Tick()
			cadence.AddRender()
			embersLog.Tracef("Frame rendered and presented in %v", sw.Split())
		}

		cadence.LogProgress(false)
		time.Sleep(loopYield)
	}

	cadence.LogProgress(true)
	return nil
}

// embersMain is the real main function for embers.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is
// called.
func embersMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	tcfg, _, err := loadConfig(appName)
	if err != nil {
		usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()
	defer embersLog.Info("Shutdown complete")

	embersLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	src, err := newSource()
	if err != nil {
		embersLog.Errorf("%v", err)
		return err
	}

	var h host.Host
	if cfg.Headless {
		h = host.NewHeadless(cfg.Width, cfg.Height)
	} else {
		h = host.NewTerminal()
	}
	width, height, err := h.Init()
	if err != nil {
		embersLog.Errorf("Failed to initialize presentation host: %v", err)
		return err
	}
	defer h.Close()

	buf := frame.NewBuffer(width, height)
	field := sim.NewField(width, height, cfg.Particles, src)
	embersLog.Infof("Animating %d particles in a %dx%d buffer (%d updates/s, "+
		"%d frames/s)", field.Len(), width, height, cfg.TickRate,
		cfg.FrameRate)

	if err := runLoop(ctx, h, field, buf); err != nil {
		embersLog.Errorf("Animation loop failed: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := embersMain(); err != nil {
		os.Exit(1)
	}
}
