//go:build !headless

// audio_backend_oto.go - oto v3 pull-model audio output

package main

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// AudioDevice streams SoundMixer's mixed output to the system audio
// device, grounded directly on the reference OtoPlayer: an atomic pointer
// to the sample source for a lock-free Read hot path, plus a preallocated
// conversion buffer.
type AudioDevice struct {
	ctx       *oto.Context
	player    *oto.Player
	mixer     atomic.Pointer[SoundMixer]
	sampleBuf []float32
	started   bool
	mutex     sync.Mutex
}

func NewAudioDevice(sampleRate int, mixer *SoundMixer) (*AudioDevice, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	dev := &AudioDevice{ctx: ctx, sampleBuf: make([]float32, 4096)}
	dev.mixer.Store(mixer)
	dev.player = ctx.NewPlayer(dev)
	return dev, nil
}

func (d *AudioDevice) Read(p []byte) (int, error) {
	mixer := d.mixer.Load()
	if mixer == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	if len(d.sampleBuf) < numSamples {
		d.sampleBuf = make([]float32, numSamples)
	}
	samples := d.sampleBuf[:numSamples]
	for i := 0; i < numSamples; i++ {
		samples[i] = mixer.ReadSample()
	}
	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (d *AudioDevice) Start() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if !d.started {
		d.player.Play()
		d.started = true
	}
}

func (d *AudioDevice) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.started {
		d.player.Close()
		d.started = false
	}
}
