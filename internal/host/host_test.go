// Copyright (c) 2026 The Embers developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"testing"

	"github.com/emberlab/embers/internal/frame"
)

// TestHeadless ensures the headless host reports its configured dimensions,
// counts frames, and never requests shutdown.
func TestHeadless(t *testing.T) {
	h := NewHeadless(320, 200)
	w, hgt, err := h.Init()
	if err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if w != 320 || hgt != 200 {
		t.Fatalf("unexpected dimensions: got %dx%d, want 320x200", w, hgt)
	}

	buf := frame.NewBuffer(w, hgt)
	for i := 0; i < 5; i++ {
		if !h.PumpEvents() {
			t.Fatal("headless host requested shutdown")
		}
		if err := h.Present(buf); err != nil {
			t.Fatalf("unexpected present error: %v", err)
		}
	}
	if got := h.Frames(); got != 5 {
		t.Fatalf("unexpected frame count: got %d, want 5", got)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}
