// cpu8080_ops.go - data movement instructions: MOV, MVI, LXI, LDA/STA,
// LHLD/SHLD, LDAX/STAX, XCHG, XTHL, SPHL, PCHL, PUSH, POP

package main

func (c *CPU8080) opMOV(dst, src byte) {
	c.Ticks += 5
	if dst == 6 || src == 6 {
		c.Ticks += 2
	}
	c.setRegister(dst, c.register(src))
}

func (c *CPU8080) opMVI(dst byte) {
	c.Ticks += 7
	if dst == 6 {
		c.Ticks += 3
	}
	c.setRegister(dst, c.fetchByte())
}

func (c *CPU8080) opLXI(rp byte) {
	c.Ticks += 10
	v := c.fetchWord()
	switch rp {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

func (c *CPU8080) opSTAX(rp byte) {
	c.Ticks += 7
	if rp == 0 {
		c.Memory[c.BC()] = c.A
	} else {
		c.Memory[c.DE()] = c.A
	}
}

func (c *CPU8080) opLDAX(rp byte) {
	c.Ticks += 7
	if rp == 0 {
		c.A = c.Memory[c.BC()]
	} else {
		c.A = c.Memory[c.DE()]
	}
}

func (c *CPU8080) opSTA() {
	c.Ticks += 13
	addr := c.fetchWord()
	c.Memory[addr] = c.A
}

func (c *CPU8080) opLDA() {
	c.Ticks += 13
	addr := c.fetchWord()
	c.A = c.Memory[addr]
}

func (c *CPU8080) opSHLD() {
	c.Ticks += 16
	addr := c.fetchWord()
	c.Memory[addr] = c.L
	c.Memory[addr+1] = c.H
}

func (c *CPU8080) opLHLD() {
	c.Ticks += 16
	addr := c.fetchWord()
	c.L = c.Memory[addr]
	c.H = c.Memory[addr+1]
}

func (c *CPU8080) opXCHG() {
	c.Ticks += 4
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
}

func (c *CPU8080) opXTHL() {
	c.Ticks += 18
	c.L, c.Memory[c.SP] = c.Memory[c.SP], c.L
	c.H, c.Memory[c.SP+1] = c.Memory[c.SP+1], c.H
}

func (c *CPU8080) opSPHL() {
	c.Ticks += 5
	c.SP = c.HL()
}

func (c *CPU8080) opPCHL() {
	c.Ticks += 5
	c.PC = c.HL()
}

// opPUSH handles BC/DE/HL/PSW. PSW packs A (high byte) over F (low byte),
// matching PUSH PSW's documented stack layout.
func (c *CPU8080) opPUSH(rp byte) {
	c.Ticks += 11
	var v uint16
	switch rp {
	case 0:
		v = c.BC()
	case 1:
		v = c.DE()
	case 2:
		v = c.HL()
	default:
		v = c.PSW()
	}
	c.push16(v)
}

// opPOP handles BC/DE/HL/PSW. Popping PSW sanitizes the flags byte: bits 1,3
// and 5 of the 8080 flag register are fixed (1,0,0 respectively) regardless
// of what was pushed, so the mask 0xD7 clears them before forcing bit 1 on.
func (c *CPU8080) opPOP(rp byte) {
	c.Ticks += 10
	v := c.pop16()
	switch rp {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.A = byte(v >> 8)
		c.F = (byte(v) & 0xD7) | 0x02
	}
}
