// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
embers animates a fixed population of bouncing colored particles in an
off-screen pixel buffer and presents it at a capped frame rate, either to an
ANSI truecolor terminal or headlessly.

Simulation updates and frame presentation are gated by two independent
fixed-rate tick limiters, so the update rate and the frame rate can be tuned
separately.  A fixed PRNG seed makes runs fully reproducible.

Usage:

	embers [OPTIONS]

Application Options:

	-V, --version     Display version information and exit
	-C, --configfile= Path to an INI configuration file
	-d, --debuglevel= Logging level for all subsystems {trace, debug, info,
	                  warn, error, critical} -- You may also specify
	                  <subsystem>=<level>,<subsystem2>=<level>,... to set
	                  the log level for individual subsystems
	    --logfile=    Write log output to the provided file with rotation
	    --headless    Run without a terminal surface
	    --width=      Pixel buffer width for headless runs (default: 160)
	    --height=     Pixel buffer height for headless runs (default: 100)
	-n, --particles=  Number of particles to animate (default: 100)
	    --tickrate=   Target simulation updates per second (default: 30)
	    --framerate=  Target rendered frames per second (default: 30)
	    --seed=       Fixed PRNG seed for reproducible runs (0 seeds from
	                  OS entropy)
	    --duration=   Exit automatically after the provided run time (0
	                  runs until interrupted)

Help Options:

	-h, --help        Show this help message
*/
package main
