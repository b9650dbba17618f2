// interruptscheduler.go - the alternating mid-frame/VBlank RST generator

package main

const (
	// cyclesPerHalfFrame is the number of CPU cycles between each of the two
	// interrupts the stock ROM expects per 60Hz frame, giving ~120Hz total
	// alternating between the two RST vectors.
	cyclesPerHalfFrame = 16666

	rstMidFrame byte = 0xCF // RST 1
	rstVBlank   byte = 0xD7 // RST 2
)

// InterruptScheduler tracks accumulated cycles and raises the alternating
// RST 0xCF / RST 0xD7 interrupts on the CPU every cyclesPerHalfFrame ticks.
type InterruptScheduler struct {
	accumulated uint64
	nextIsVBlank bool
}

// Advance should be called once per CPU cycle with the number of ticks that
// cycle charged; it requests an interrupt on the CPU whenever a half-frame
// boundary is crossed.
func (s *InterruptScheduler) Advance(cpu *CPU8080, ticks uint64) {
	s.accumulated += ticks
	for s.accumulated >= cyclesPerHalfFrame {
		s.accumulated -= cyclesPerHalfFrame
		if s.nextIsVBlank {
			cpu.RequestInterrupt(rstVBlank)
		} else {
			cpu.RequestInterrupt(rstMidFrame)
		}
		s.nextIsVBlank = !s.nextIsVBlank
	}
}
