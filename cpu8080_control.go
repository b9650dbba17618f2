// cpu8080_control.go - JMP/JCC, CALL/CCC, RET/RCC, RST and the condition table

package main

// condition evaluates the 3-bit cc field against the documented table:
// NZ, Z, NC, C, PO, PE, P, M. P and M test the sign flag clear/set; they are
// implemented directly here rather than following the reference
// implementation's condition dispatch, which mistakenly reuses the parity
// test for index 6 instead of a sign-flag test.
func (c *CPU8080) condition(cc byte) bool {
	switch cc {
	case 0:
		return !c.getFlag(flagZ)
	case 1:
		return c.getFlag(flagZ)
	case 2:
		return !c.getFlag(flagC)
	case 3:
		return c.getFlag(flagC)
	case 4:
		return !c.getFlag(flagP)
	case 5:
		return c.getFlag(flagP)
	case 6:
		return !c.getFlag(flagS)
	default:
		return c.getFlag(flagS)
	}
}

func (c *CPU8080) opJMP() {
	c.Ticks += 10
	c.PC = c.fetchWord()
}

// opJCC always consumes the 16-bit operand, whether or not the jump is
// taken, and always charges 10 cycles.
func (c *CPU8080) opJCC(cc byte) {
	c.Ticks += 10
	addr := c.fetchWord()
	if c.condition(cc) {
		c.PC = addr
	}
}

func (c *CPU8080) opCALL() {
	c.Ticks += 17
	addr := c.fetchWord()
	c.push16(c.PC)
	c.PC = addr
}

// opCCC charges 11 cycles when not taken, 17 when taken (11 base + 6 for the
// push), and always consumes the operand.
func (c *CPU8080) opCCC(cc byte) {
	c.Ticks += 11
	addr := c.fetchWord()
	if c.condition(cc) {
		c.Ticks += 6
		c.push16(c.PC)
		c.PC = addr
	}
}

func (c *CPU8080) opRET() {
	c.Ticks += 10
	c.PC = c.pop16()
}

// opRCC charges 5 cycles when not taken, 11 when taken.
func (c *CPU8080) opRCC(cc byte) {
	c.Ticks += 5
	if c.condition(cc) {
		c.Ticks += 6
		c.PC = c.pop16()
	}
}

func (c *CPU8080) opRST(n byte) {
	c.Ticks += 11
	c.push16(c.PC)
	c.PC = uint16(n) * 8
}
