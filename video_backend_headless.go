//go:build headless

// video_backend_headless.go - no window; raw-mode terminal input for
// interactive headless play, and a plain no-op sink for tests and CI

package main

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// HeadlessOutput discards frames (there is no window to draw into) but
// still accepts raw terminal keystrokes so a headless build remains
// playable over SSH, and so golden-capture tests can drive the machine
// without a display.
type HeadlessOutput struct {
	running    bool
	oldState   *term.State
	controls   ControllerState
	controlsMu sync.RWMutex
	stopCh     chan struct{}
}

func NewHeadlessOutput() (*HeadlessOutput, error) {
	return &HeadlessOutput{stopCh: make(chan struct{})}, nil
}

// NewVideoOutput is the build-tag-selected constructor main.go calls; the
// windowed build provides its own same-named function returning an
// EbitenOutput instead. scale is accepted for signature parity but unused -
// a raw terminal has no pixel scale.
func NewVideoOutput(scale int) (VideoOutput, error) {
	return NewHeadlessOutput()
}

func (h *HeadlessOutput) Start() error {
	if h.running {
		return nil
	}
	h.running = true
	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err == nil {
			h.oldState = oldState
			go h.readKeys()
		}
	}
	return nil
}

func (h *HeadlessOutput) Stop() error {
	h.running = false
	if h.oldState != nil {
		_ = term.Restore(int(os.Stdin.Fd()), h.oldState)
		h.oldState = nil
	}
	close(h.stopCh)
	return nil
}

func (h *HeadlessOutput) IsStarted() bool { return h.running }

func (h *HeadlessOutput) UpdateFrame(rgba []byte) error { return nil }

func (h *HeadlessOutput) PollControls() ControllerState {
	h.controlsMu.Lock()
	defer h.controlsMu.Unlock()
	controls := h.controls
	h.controls = ControllerState{}
	return controls
}

// readKeys maps a fixed set of single keystrokes onto the cabinet buttons.
// Unlike the windowed backend, a raw terminal has no key-up event, so every
// button here behaves as a one-frame pulse rather than held state - an
// accepted limitation of text-console control.
func (h *HeadlessOutput) readKeys() {
	buf := make([]byte, 1)
	for {
		select {
		case <-h.stopCh:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			continue
		}
		h.applyKey(buf[0])
	}
}

func (h *HeadlessOutput) applyKey(b byte) {
	h.controlsMu.Lock()
	defer h.controlsMu.Unlock()
	h.controls = ControllerState{}
	switch b {
	case 'a':
		h.controls.P1Left = true
	case 'd':
		h.controls.P1Right = true
	case ' ':
		h.controls.P1Fire = true
	case '1':
		h.controls.P1Start = true
	case '2':
		h.controls.P2Start = true
	case '5':
		h.controls.Coin = true
	}
}
