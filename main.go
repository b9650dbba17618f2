// main.go - CLI entry point: wires the CPU, arcade shell, interrupt
// scheduler and video/audio backends together and drives the run loop

package main

import (
	"fmt"
	"os"
)

const defaultSampleRate = 44100

type cliConfig struct {
	romDir   string
	scale    int
	bdosTest string // when set, a flat CP/M-style test binary to run instead of the arcade ROM
}

func parseArgs(args []string) (cliConfig, error) {
	cfg := cliConfig{romDir: "roms", scale: 2}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--rom-dir":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--rom-dir requires a value")
			}
			cfg.romDir = args[i]
		case "--scale":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--scale requires a value")
			}
			var scale int
			if _, err := fmt.Sscanf(args[i], "%d", &scale); err != nil || scale < 1 {
				return cfg, fmt.Errorf("--scale must be a positive integer")
			}
			cfg.scale = scale
		case "--bdos-test":
			i++
			if i >= len(args) {
				return cfg, fmt.Errorf("--bdos-test requires a value")
			}
			cfg.bdosTest = args[i]
		default:
			return cfg, fmt.Errorf("unrecognized argument: %s", args[i])
		}
	}
	return cfg, nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Printf("Usage: %s [--rom-dir DIR] [--scale N] [--bdos-test FILE]\n", os.Args[0])
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	loader, err := NewROMLoader(cfg.romDir)
	if err != nil {
		fmt.Printf("Failed to initialize ROM loader: %v\n", err)
		os.Exit(1)
	}

	mixer := NewSoundMixer(defaultSampleRate)
	shell := NewArcadeShell(mixer)
	cpu := NewCPU8080(shell)

	if cfg.bdosTest != "" {
		cpu.BDOSTrapEnabled = true
		cpu.SetBDOSOutput(func(b byte) { fmt.Print(string(b)) })
		if err := loader.LoadFlat(&cpu.Memory, cfg.bdosTest, 0x0100); err != nil {
			fmt.Printf("Failed to load test binary: %v\n", err)
			os.Exit(1)
		}
		cpu.PC = 0x0100
		runExerciser(cpu)
		return
	}

	if err := loader.LoadBanked(&cpu.Memory); err != nil {
		fmt.Printf("Failed to load ROM: %v\n", err)
		os.Exit(1)
	}

	audio, err := NewAudioDevice(defaultSampleRate, mixer)
	if err != nil {
		fmt.Printf("Failed to initialize audio: %v\n", err)
		os.Exit(1)
	}
	audio.Start()
	defer audio.Stop()

	video, err := NewVideoOutput(cfg.scale)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	if err := video.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}
	defer video.Stop()

	runMachine(cpu, shell, video)
}

// runMachine drives the CPU indefinitely, feeding the interrupt scheduler
// and presenting a frame to the video backend once per VBlank.
func runMachine(cpu *CPU8080, shell *ArcadeShell, video VideoOutput) {
	scheduler := &InterruptScheduler{}
	framesSinceVBlank := uint64(0)
	for {
		ticksBefore := cpu.TotalTicks
		cpu.Cycle()
		ticks := cpu.TotalTicks - ticksBefore
		before := scheduler.nextIsVBlank
		scheduler.Advance(cpu, ticks)
		if before != scheduler.nextIsVBlank && before {
			// a VBlank RST was just queued; present the frame it corresponds to
			framesSinceVBlank++
			rgba := ReadFramebufferRGBA(&cpu.Memory)
			_ = video.UpdateFrame(rgba)
			shell.Controls = video.PollControls()
		}
	}
}

// runExerciser runs a CP/M-style test binary until a Cycle leaves PC where
// it was, which is what executing HLT does. The BDOS trap has no exit
// function, so a binary that never halts keeps running.
func runExerciser(cpu *CPU8080) {
	for {
		pcBefore := cpu.PC
		cpu.Cycle()
		if cpu.PC == pcBefore {
			// HLT parks PC in place; treat that as completion.
			return
		}
	}
}
