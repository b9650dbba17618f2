//go:build headless

// audio_backend_headless.go - no-op audio sink for the headless build and tests

package main

// AudioDevice discards everything; headless builds and CI need no real
// audio device, but main.go wires one unconditionally either way.
type AudioDevice struct {
	started bool
	mixer   *SoundMixer
}

func NewAudioDevice(sampleRate int, mixer *SoundMixer) (*AudioDevice, error) {
	return &AudioDevice{mixer: mixer}, nil
}

func (d *AudioDevice) Start() { d.started = true }
func (d *AudioDevice) Stop()  { d.started = false }
