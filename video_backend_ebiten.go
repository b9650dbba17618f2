//go:build !headless

// video_backend_ebiten.go - windowed presentation via ebiten

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenOutput renders the rotated framebuffer in a resizable window and
// polls the nine cabinet buttons and the tilt switch directly from ebiten's key state each
// Update, in place of the reference backend's printable-character key
// handler - Space Invaders needs held-button state, not typed text.
type EbitenOutput struct {
	running     bool
	scale       int
	frameBuffer []byte
	window      *ebiten.Image
	bufferMutex sync.RWMutex
	controls    ControllerState
	controlsMu  sync.RWMutex
}

func NewEbitenOutput(scale int) (*EbitenOutput, error) {
	if scale < 1 {
		scale = 1
	}
	return &EbitenOutput{
		scale:       scale,
		frameBuffer: make([]byte, screenWidth*screenHeight*4),
	}, nil
}

// NewVideoOutput is the build-tag-selected constructor main.go calls; the
// headless build provides its own same-named function returning a
// HeadlessOutput instead.
func NewVideoOutput(scale int) (VideoOutput, error) {
	return NewEbitenOutput(scale)
}

func (eo *EbitenOutput) Start() error {
	if eo.running {
		return nil
	}
	eo.running = true
	ebiten.SetWindowSize(screenWidth*eo.scale, screenHeight*eo.scale)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetWindowResizable(true)
	go func() {
		_ = ebiten.RunGame(eo)
	}()
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running = false
	return nil
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running
}

func (eo *EbitenOutput) UpdateFrame(rgba []byte) error {
	eo.bufferMutex.Lock()
	copy(eo.frameBuffer, rgba)
	eo.bufferMutex.Unlock()
	return nil
}

func (eo *EbitenOutput) PollControls() ControllerState {
	eo.controlsMu.RLock()
	defer eo.controlsMu.RUnlock()
	return eo.controls
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running {
		return ebiten.Termination
	}
	eo.pollKeys()
	return nil
}

func (eo *EbitenOutput) pollKeys() {
	eo.controlsMu.Lock()
	defer eo.controlsMu.Unlock()
	eo.controls = ControllerState{
		P1Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		P1Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		P1Fire:     ebiten.IsKeyPressed(ebiten.KeySpace),
		P2Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		P2Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		P2Fire:     ebiten.IsKeyPressed(ebiten.KeyW),
		P1Start:    ebiten.IsKeyPressed(ebiten.Key1),
		P2Start:    ebiten.IsKeyPressed(ebiten.Key2),
		Coin:       ebiten.IsKeyPressed(ebiten.Key5),
		TiltSwitch: ebiten.IsKeyPressed(ebiten.KeyT),
	}
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	if eo.window == nil {
		eo.window = ebiten.NewImage(screenWidth, screenHeight)
	}
	eo.bufferMutex.RLock()
	eo.window.WritePixels(eo.frameBuffer)
	eo.bufferMutex.RUnlock()
	screen.DrawImage(eo.window, nil)
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}
