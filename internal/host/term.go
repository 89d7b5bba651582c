// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/emberlab/embers/internal/frame"
)

// Terminal control sequences used by the terminal host.
const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	resetAttrs     = "\x1b[0m"
)

// upperHalfBlock renders two vertically stacked pixels per terminal cell:
// the foreground color paints the top pixel and the background color paints
// the bottom one.
const upperHalfBlock = "▀"

// Terminal is a presentation host that blits frames to an ANSI truecolor
// terminal using half-block characters, giving two vertical pixels per cell.
// Init switches the terminal to raw mode and the alternate screen; Close
// restores both.
type Terminal struct {
	in       *os.File
	out      *bufio.Writer
	oldState *term.State
	width    int
	height   int
	events   chan byte
	quit     bool
}

// NewTerminal returns a terminal host reading input from stdin and writing
// frames to stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:     os.Stdin,
		out:    bufio.NewWriterSize(os.Stdout, 1<<20),
		events: make(chan byte, 64),
	}
}

// Init switches the terminal to raw mode, enters the alternate screen, and
// returns the pixel dimensions of the drawable area.  It errors when stdin
// is not an interactive terminal.
func (t *Terminal) Init() (int, int, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("host: stdin is not a terminal")
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("host: failed to query terminal size: %w", err)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("host: failed to enter raw mode: %w", err)
	}
	t.oldState = oldState

	// Reserve the bottom row so the final frame never scrolls the screen.
	t.width = cols
	t.height = (rows - 1) * 2

	fmt.Fprint(t.out, enterAltScreen+hideCursor)
	t.out.Flush()

	// Feed raw input bytes to the event pump without blocking it.  The
	// goroutine exits when the terminal is closed and the read errors.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := t.in.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				select {
				case t.events <- buf[0]:
				default:
					// Drop input rather than stall the reader.
				}
			}
		}
	}()

	log.Debugf("Terminal host initialized: %dx%d cells, %dx%d pixels", cols,
		rows, t.width, t.height)
	return t.width, t.height, nil
}

// PumpEvents drains pending input and reports whether the loop should keep
// running.  A q, escape, Ctrl+C, or Ctrl+D keypress requests shutdown.
func (t *Terminal) PumpEvents() bool {
	const maxEventsPerCycle = 20
	for i := 0; i < maxEventsPerCycle; i++ {
		select {
		case b := <-t.events:
			switch b {
			case 'q', 'Q', 0x1b, 0x03, 0x04:
				log.Debugf("Quit requested via key 0x%02x", b)
				t.quit = true
			}
		default:
			return !t.quit
		}
	}
	return !t.quit
}

// Present blits the provided buffer to the terminal.  Each output cell
// stacks two buffer rows; color escape codes are only emitted when a channel
// changes between neighboring cells.
func (t *Terminal) Present(buf *frame.Buffer) error {
	var sb strings.Builder
	sb.Grow(buf.Width() * buf.Height() * 8)
	sb.WriteString(cursorHome)

	var curFg, curBg frame.Color
	haveAttrs := false
	for y := 0; y < buf.Height(); y += 2 {
		if y > 0 {
			sb.WriteString("\r\n")
		}
		for x := 0; x < buf.Width(); x++ {
			fg := buf.At(x, y)
			bg := buf.At(x, y+1) // out of range reads black
			if !haveAttrs || fg != curFg {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", fg.R(), fg.G(), fg.B())
				curFg = fg
			}
			if !haveAttrs || bg != curBg {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", bg.R(), bg.G(), bg.B())
				curBg = bg
			}
			haveAttrs = true
			sb.WriteString(upperHalfBlock)
		}
	}
	sb.WriteString(resetAttrs)

	if _, err := t.out.WriteString(sb.String()); err != nil {
		return fmt.Errorf("host: failed to write frame: %w", err)
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("host: failed to flush frame: %w", err)
	}
	return nil
}

// Close restores the terminal state, screen, and cursor.
func (t *Terminal) Close() error {
	fmt.Fprint(t.out, resetAttrs+showCursor+leaveAltScreen)
	t.out.Flush()
	if t.oldState != nil {
		if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
			return fmt.Errorf("host: failed to restore terminal: %w", err)
		}
		t.oldState = nil
	}
	log.Debug("Terminal host closed")
	return nil
}
