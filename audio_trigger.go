// audio_trigger.go - the nine discrete Space Invaders sound cues, synthesized
// as short procedural waveforms rather than decoded from sample files

package main

import "math"

// SoundCue identifies one of the arcade board's nine discrete sound
// effects, each driven by an edge on an output port bit.
type SoundCue int

const (
	CueUFOLoop SoundCue = iota
	CueShot
	CuePlayerDie
	CueInvaderDie
	CueFleetMove1
	CueFleetMove2
	CueFleetMove3
	CueFleetMove4
	CueUFOHit
)

// AudioTrigger is the boundary between the arcade shell's port-edge
// detection and whatever actually produces sound. Trigger(cue, true) starts
// a one-shot or a looping cue (CueUFOLoop only); Trigger(cue, false) stops
// the cue if it is still playing (the shell sends it for CueUFOLoop and
// CueShot on their falling edges).
type AudioTrigger interface {
	Trigger(cue SoundCue, on bool)
}

// cueWaveform describes the procedural synthesis parameters for one cue:
// an oscillator frequency, a duration, whether the cue loops until
// explicitly stopped, and whether white noise replaces the tone.
type cueWaveform struct {
	freqHz   float64
	duration float64 // seconds; ignored when looping
	loop     bool
	noise    bool
}

var cueWaveforms = map[SoundCue]cueWaveform{
	CueUFOLoop:    {freqHz: 180, loop: true},
	CueShot:       {freqHz: 900, duration: 0.08},
	CuePlayerDie:  {freqHz: 0, duration: 0.4, noise: true},
	CueInvaderDie: {freqHz: 1400, duration: 0.1},
	CueFleetMove1: {freqHz: 110, duration: 0.06},
	CueFleetMove2: {freqHz: 130, duration: 0.06},
	CueFleetMove3: {freqHz: 150, duration: 0.06},
	CueFleetMove4: {freqHz: 170, duration: 0.06},
	CueUFOHit:     {freqHz: 600, duration: 0.5},
}

// synthSample evaluates the waveform for cue at time t seconds since the
// cue started, in the style of the reference audio chip's simple
// square-oscillator generators - just a single square/noise voice per cue
// rather than that chip's full envelope/sweep/ring-mod/filter chain, which
// would be overkill for a fire-and-forget one-shot.
func synthSample(w cueWaveform, t float64, rng *noiseSource) float64 {
	if w.noise {
		return rng.next()
	}
	cyclePos := math.Mod(t*w.freqHz, 1.0)
	if cyclePos < 0.5 {
		return 1.0
	}
	return -1.0
}

// noiseSource is a minimal xorshift PRNG used for the noise-burst cues;
// avoids pulling in math/rand for a single-purpose square-wave-ish hiss.
type noiseSource struct {
	state uint32
}

func newNoiseSource() *noiseSource {
	return &noiseSource{state: 0x9E3779B9}
}

func (n *noiseSource) next() float64 {
	n.state ^= n.state << 13
	n.state ^= n.state >> 17
	n.state ^= n.state << 5
	return float64(int32(n.state)) / float64(math.MaxInt32)
}

type activeVoice struct {
	waveform cueWaveform
	elapsed  float64
	playing  bool
}

// SoundMixer implements AudioTrigger and owns every active voice; the oto
// audio backend pulls mixed samples from it via ReadSample (the headless
// backend holds it but never reads from it), mirroring the reference sound chip's ring-buffer pull model
// without needing that chip's full channel/effects architecture.
type SoundMixer struct {
	sampleRate int
	voices     map[SoundCue]*activeVoice
	rng        *noiseSource
}

func NewSoundMixer(sampleRate int) *SoundMixer {
	return &SoundMixer{
		sampleRate: sampleRate,
		voices:     make(map[SoundCue]*activeVoice),
		rng:        newNoiseSource(),
	}
}

func (m *SoundMixer) Trigger(cue SoundCue, on bool) {
	w, ok := cueWaveforms[cue]
	if !ok {
		return
	}
	if w.loop {
		if on {
			m.voices[cue] = &activeVoice{waveform: w, playing: true}
		} else {
			delete(m.voices, cue)
		}
		return
	}
	if on {
		m.voices[cue] = &activeVoice{waveform: w, playing: true}
	} else {
		delete(m.voices, cue)
	}
}

// ReadSample advances every active voice by one sample period and returns
// the mixed, clamped output in [-1, 1].
func (m *SoundMixer) ReadSample() float32 {
	if len(m.voices) == 0 {
		return 0
	}
	dt := 1.0 / float64(m.sampleRate)
	var sum float64
	for cue, v := range m.voices {
		sum += synthSample(v.waveform, v.elapsed, m.rng)
		v.elapsed += dt
		if !v.waveform.loop && v.elapsed >= v.waveform.duration {
			delete(m.voices, cue)
		}
	}
	if sum > 1 {
		sum = 1
	}
	if sum < -1 {
		sum = -1
	}
	return float32(sum)
}
