// video_backend.go - the presentation boundary shared by the ebiten and
// headless video backends

package main

// VideoOutput is the boundary between the emulated machine and however the
// host actually shows pixels. UpdateFrame is called once per VBlank with a
// freshly rotated RGBA buffer; PollControls refreshes ControllerState from
// whatever the backend reads keys/buttons from.
type VideoOutput interface {
	Start() error
	Stop() error
	UpdateFrame(rgba []byte) error
	PollControls() ControllerState
	IsStarted() bool
}
