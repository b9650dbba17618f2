// arcadeshell.go - Space Invaders cabinet I/O: input latches, output port
// dispatch, sound-bit edge detection and DIP switches

package main

// ControllerState mirrors the nine discrete cabinet buttons and the tilt
// switch a host polls
// once per frame. Generalized from the teacher's CHIP-8 16-key scan-array
// idiom down to the fixed Space Invaders button set.
type ControllerState struct {
	P1Left, P1Right, P1Fire   bool
	P2Left, P2Right, P2Fire   bool
	P1Start, P2Start, Coin    bool
	TiltSwitch                bool
}

// DIPSwitches models port 2's cabinet-configuration bits: ship count (bits
// 0-1), bonus-life threshold (bit 3), and coin-info display (bit 7). Bits 2
// and 4-6 are not DIP bits: port2Bits leaves them zero and In fills them
// from the tilt switch and the player-2 buttons.
type DIPSwitches struct {
	ShipCount         byte // 0..3: 3,4,5,6 ships
	BonusLifeAt1000   bool // false = bonus at 1500, true = at 1000
	ShowCoinInfo      bool
}

func (d DIPSwitches) port2Bits() byte {
	var b byte
	b |= d.ShipCount & 0x03
	if d.BonusLifeAt1000 {
		b |= 0x08
	}
	if d.ShowCoinInfo {
		b |= 0x80
	}
	return b
}

// ArcadeShell implements IOPorts for the fixed Space Invaders port map:
// input ports 0/1 (buttons), port 2 (DIP bits, tilt and player-2 buttons),
// port 3 (shift register result);
// output port 2 (shift offset), port 3 (sound bank 1), port 4 (shift data
// insert), port 5 (sound bank 2).
type ArcadeShell struct {
	Controls    ControllerState
	DIPSwitches DIPSwitches

	shift ShiftRegister

	// previous output-port-3/5 byte, used to detect which bits changed so
	// sound cues fire once per edge rather than once per write.
	prevPort3 byte
	prevPort5 byte

	Sounds AudioTrigger
}

func NewArcadeShell(sounds AudioTrigger) *ArcadeShell {
	return &ArcadeShell{Sounds: sounds}
}

// In implements IOPorts.In for the four readable ports the stock ROM uses.
func (a *ArcadeShell) In(port byte) byte {
	switch port {
	case 0:
		var b byte = 0x0E // base value per the stock ROM's expectations
		if a.Controls.P1Fire {
			b |= 0x10
		}
		if a.Controls.P1Left {
			b |= 0x20
		}
		if a.Controls.P1Right {
			b |= 0x40
		}
		return b
	case 1:
		var b byte = 0x08 // bit 3 reserved high per the stock ROM's expectations
		if a.Controls.Coin {
			b |= 0x01
		}
		if a.Controls.P2Start {
			b |= 0x02
		}
		if a.Controls.P1Start {
			b |= 0x04
		}
		if a.Controls.P1Fire {
			b |= 0x10
		}
		if a.Controls.P1Left {
			b |= 0x20
		}
		if a.Controls.P1Right {
			b |= 0x40
		}
		return b
	case 2:
		b := a.DIPSwitches.port2Bits()
		if a.Controls.TiltSwitch {
			b |= 0x04
		}
		if a.Controls.P2Fire {
			b |= 0x10
		}
		if a.Controls.P2Left {
			b |= 0x20
		}
		if a.Controls.P2Right {
			b |= 0x40
		}
		return b
	case 3:
		return a.shift.Result()
	default:
		return 0xFF
	}
}

// Out implements IOPorts.Out for the four writable ports: 2 (shift offset),
// 3 and 5 (sound banks), 4 (shift register insert).
func (a *ArcadeShell) Out(port byte, value byte) {
	switch port {
	case 2:
		a.shift.WriteOffset(value)
	case 3:
		a.dispatchSoundBank1(value)
		a.prevPort3 = value
	case 4:
		a.shift.Insert(value)
	case 5:
		a.dispatchSoundBank2(value)
		a.prevPort5 = value
	}
}

// dispatchSoundBank1 handles port 3: bits 0 and 1 (UFO loop, shot) trigger
// on every edge - both the rising edge that starts the cue and the falling
// edge that stops it - while bits 2 and 3 (player die, invader die) only
// trigger on the rising edge, since they're fire-and-forget one-shots.
func (a *ArcadeShell) dispatchSoundBank1(value byte) {
	changed := value ^ a.prevPort3
	if changed&0x01 != 0 {
		a.Sounds.Trigger(CueUFOLoop, value&0x01 != 0)
	}
	if changed&0x02 != 0 {
		a.Sounds.Trigger(CueShot, value&0x02 != 0)
	}
	if changed&0x04 != 0 && value&0x04 != 0 {
		a.Sounds.Trigger(CuePlayerDie, true)
	}
	if changed&0x08 != 0 && value&0x08 != 0 {
		a.Sounds.Trigger(CueInvaderDie, true)
	}
}

// dispatchSoundBank2 handles port 5: all five bits (four fleet-march steps
// plus the UFO-hit bonus cue) are rising-edge-only one-shots.
func (a *ArcadeShell) dispatchSoundBank2(value byte) {
	changed := value ^ a.prevPort5
	fleetCues := [4]SoundCue{CueFleetMove1, CueFleetMove2, CueFleetMove3, CueFleetMove4}
	for i, cue := range fleetCues {
		bit := byte(1) << uint(i)
		if changed&bit != 0 && value&bit != 0 {
			a.Sounds.Trigger(cue, true)
		}
	}
	if changed&0x10 != 0 && value&0x10 != 0 {
		a.Sounds.Trigger(CueUFOHit, true)
	}
}
