// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/emberlab/embers/internal/version"
)

const (
	defaultLogLevel     = "info"
	defaultNumParticles = 100
	defaultTickRate     = 30
	defaultFrameRate    = 30
	defaultWidth        = 160
	defaultHeight       = 100
)

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not
// caused by an invalid command line.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// config defines the configuration options for embers.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool          `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string        `short:"C" long:"configfile" description:"Path to an INI configuration file"`
	DebugLevel  string        `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogFile     string        `long:"logfile" description:"Write log output to the provided file with rotation"`
	Headless    bool          `long:"headless" description:"Run without a terminal surface"`
	Width       int           `long:"width" description:"Pixel buffer width for headless runs"`
	Height      int           `long:"height" description:"Pixel buffer height for headless runs"`
	Particles   int           `short:"n" long:"particles" description:"Number of particles to animate"`
	TickRate    uint64        `long:"tickrate" description:"Target simulation updates per second"`
	FrameRate   uint64        `long:"framerate" description:"Target rendered frames per second"`
	Seed        uint64        `long:"seed" description:"Fixed PRNG seed for reproducible runs (0 seeds from OS entropy)"`
	Duration    time.Duration `long:"duration" description:"Exit automatically after the provided run time (0 runs until interrupted)"`
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a sane default config
//  2. Pre-parse the command line to check for an alternative config file
//     and to handle the version flag
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// This function also initializes logging and configures it accordingly.
func loadConfig(appName string) (*config, []string, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
		Particles:  defaultNumParticles,
		TickRate:   defaultTickRate,
		FrameRate:  defaultFrameRate,
		Width:      defaultWidth,
		Height:     defaultHeight,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified or the version flag was used.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Load additional config from file when one was provided.
	parser := flags.NewParser(&cfg, flags.Default)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			str := "failed to parse config file: %w"
			return nil, nil, errSuppressUsage(fmt.Errorf(str, err).Error())
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	// Initialize log rotation.  After the log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogFile != "" {
		initLogRotator(cfg.LogFile)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	if cfg.TickRate == 0 || cfg.FrameRate == 0 {
		return nil, nil, errors.New("the tick and frame rates must be " +
			"greater than zero")
	}
	if cfg.Particles <= 0 {
		return nil, nil, errors.New("the particle count must be greater " +
			"than zero")
	}
	if cfg.Headless && (cfg.Width <= 0 || cfg.Height <= 0) {
		return nil, nil, errors.New("headless runs require positive buffer " +
			"dimensions")
	}

	return &cfg, remainingArgs, nil
}
