package main

import "testing"

func TestSoundMixerOneShotExpiresAfterDuration(t *testing.T) {
	m := NewSoundMixer(1000) // 1ms per sample, easy to reason about
	m.Trigger(CueShot, true) // duration 0.08s = 80 samples at 1000Hz

	nonZero := false
	for i := 0; i < 80; i++ {
		if m.ReadSample() != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatalf("expected at least one non-zero sample while the cue plays")
	}
	if len(m.voices) != 0 {
		t.Fatalf("voice still active after its duration elapsed")
	}
}

func TestSoundMixerLoopingCueStaysActiveUntilStopped(t *testing.T) {
	m := NewSoundMixer(1000)
	m.Trigger(CueUFOLoop, true)
	for i := 0; i < 1000; i++ {
		m.ReadSample()
	}
	if _, ok := m.voices[CueUFOLoop]; !ok {
		t.Fatalf("looping cue was dropped before being stopped")
	}
	m.Trigger(CueUFOLoop, false)
	if _, ok := m.voices[CueUFOLoop]; ok {
		t.Fatalf("looping cue still active after Trigger(on=false)")
	}
}

func TestSoundMixerSilentWithNoActiveVoices(t *testing.T) {
	m := NewSoundMixer(44100)
	if got := m.ReadSample(); got != 0 {
		t.Fatalf("ReadSample() = %v, want 0 with no active voices", got)
	}
}

func TestSoundMixerUnknownCueIsIgnored(t *testing.T) {
	m := NewSoundMixer(44100)
	m.Trigger(SoundCue(999), true)
	if len(m.voices) != 0 {
		t.Fatalf("unknown cue registered a voice")
	}
}
