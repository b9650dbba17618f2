package main

import "testing"

type fakeTrigger struct {
	calls []struct {
		cue SoundCue
		on  bool
	}
}

func (f *fakeTrigger) Trigger(cue SoundCue, on bool) {
	f.calls = append(f.calls, struct {
		cue SoundCue
		on  bool
	}{cue, on})
}

func TestArcadeShellPort0ReflectsButtons(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Controls.P1Fire = true
	shell.Controls.P1Left = true

	got := shell.In(0)
	want := byte(0x0E | 0x10 | 0x20) // base value, p1 fire, p1 left
	if got != want {
		t.Fatalf("In(0) = %#02x, want %#02x", got, want)
	}
}

func TestArcadeShellPort1ReflectsButtons(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Controls.Coin = true
	shell.Controls.P1Start = true
	shell.Controls.P1Fire = true

	got := shell.In(1)
	want := byte(0x08 | 0x01 | 0x04 | 0x10) // reserved bit3, coin, p1 start, p1 fire
	if got != want {
		t.Fatalf("In(1) = %#02x, want %#02x", got, want)
	}
}

func TestArcadeShellPort2CombinesDIPAndP2Buttons(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.DIPSwitches = DIPSwitches{ShipCount: 3, BonusLifeAt1000: true}
	shell.Controls.P2Fire = true

	got := shell.In(2)
	want := byte(0x03 | 0x08 | 0x10) // ship count 3, bonus at 1000, P2 fire
	if got != want {
		t.Fatalf("In(2) = %#02x, want %#02x", got, want)
	}
}

func TestArcadeShellPort3ReadsShiftResult(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Out(4, 0xAB) // insert
	shell.Out(2, 0)    // offset 0
	if got := shell.In(3); got != 0xAB {
		t.Fatalf("In(3) = %#02x, want 0xAB", got)
	}
}

func TestArcadeShellSoundBank1BothEdgeTriggerForUFOAndShot(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Out(3, 0x01) // UFO loop on
	shell.Out(3, 0x00) // UFO loop off
	if len(trig.calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(trig.calls))
	}
	if trig.calls[0].cue != CueUFOLoop || !trig.calls[0].on {
		t.Fatalf("call0 = %+v, want UFOLoop on=true", trig.calls[0])
	}
	if trig.calls[1].cue != CueUFOLoop || trig.calls[1].on {
		t.Fatalf("call1 = %+v, want UFOLoop on=false", trig.calls[1])
	}
}

func TestArcadeShellSoundBank1RisingEdgeOnlyForDieSounds(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Out(3, 0x04) // player die bit rises
	shell.Out(3, 0x00) // falls - should NOT re-trigger
	if len(trig.calls) != 1 {
		t.Fatalf("got %d calls, want 1 (rising edge only)", len(trig.calls))
	}
	if trig.calls[0].cue != CuePlayerDie || !trig.calls[0].on {
		t.Fatalf("call0 = %+v, want PlayerDie on=true", trig.calls[0])
	}
}

func TestArcadeShellSoundBank2FleetMoveAndUFOHitRisingEdgeOnly(t *testing.T) {
	trig := &fakeTrigger{}
	shell := NewArcadeShell(trig)
	shell.Out(5, 0x01) // fleet move 1
	shell.Out(5, 0x19) // fleet move 1 stays high, move 4 and UFO hit rise
	shell.Out(5, 0x00) // everything falls - no further triggers

	if len(trig.calls) != 3 {
		t.Fatalf("got %d calls, want 3, calls=%+v", len(trig.calls), trig.calls)
	}
	if trig.calls[0].cue != CueFleetMove1 {
		t.Fatalf("call0 = %+v, want FleetMove1", trig.calls[0])
	}
	if trig.calls[1].cue != CueFleetMove4 {
		t.Fatalf("call1 = %+v, want FleetMove4", trig.calls[1])
	}
	if trig.calls[2].cue != CueUFOHit {
		t.Fatalf("call2 = %+v, want UFOHit", trig.calls[2])
	}
}
