// cpu8080_alu.go - flag computation and arithmetic/logic instructions

package main

// setSZP recomputes sign, zero and parity from a result byte, leaving carry
// and aux-carry untouched. Parity is even-parity: set when the number of
// one-bits is even.
func (c *CPU8080) setSZP(result byte) {
	c.setFlag(flagS, result&0x80 != 0)
	c.setFlag(flagZ, result == 0)
	ones := 0
	for b := result; b != 0; b &= b - 1 {
		ones++
	}
	c.setFlag(flagP, ones%2 == 0)
}

// add3 performs i1+i2+i3 (mod 256) and reports the aux-carry (bit 4 carry
// out of the low nibble) and carry (bit 8 carry out) that the addition
// produced, without touching any register. Used by ADD/ADC/ACI (carryIn may
// be 0) and by the SUB/SBB family's complement-plus-carry trick.
func add3(i1, i2, i3 byte) (result byte, aux, carry bool) {
	sum16 := uint16(i1) + uint16(i2) + uint16(i3)
	result = byte(sum16)
	aux = (uint16(i1&0xF)+uint16(i2&0xF)+uint16(i3&0xF))&0x10 != 0
	carry = sum16 > 0xFF
	return
}

// add3SZAPC performs the add3 above and also updates S/Z/P/A/C from it,
// returning the result byte.
func (c *CPU8080) add3SZAPC(i1, i2, i3 byte) byte {
	result, aux, carry := add3(i1, i2, i3)
	c.setSZP(result)
	c.setFlag(flagA, aux)
	c.setFlag(flagC, carry)
	return result
}

func (c *CPU8080) aluAdd(operand byte) {
	c.A = c.add3SZAPC(c.A, operand, 0)
}

func (c *CPU8080) aluAdc(operand byte) {
	carryIn := byte(0)
	if c.getFlag(flagC) {
		carryIn = 1
	}
	c.A = c.add3SZAPC(c.A, operand, carryIn)
}

// aluSub implements SUB/SUI: computed as A + (^operand + 1), matching the
// reference implementation's two's-complement trick, but the carry flag is
// then overwritten with a direct borrow comparison (operand > original A)
// rather than trusted from the complement-add, since the complement-add's
// carry-out means something different from "did this subtraction borrow."
func (c *CPU8080) aluSub(operand byte) {
	aBefore := c.A
	c.A = c.add3SZAPC(aBefore, ^operand, 1)
	c.setFlag(flagC, operand > aBefore)
}

func (c *CPU8080) aluSbb(operand byte) {
	aBefore := c.A
	carryIn := byte(0)
	borrowIn := byte(0)
	if c.getFlag(flagC) {
		borrowIn = 1
	} else {
		carryIn = 1
	}
	c.A = c.add3SZAPC(aBefore, ^operand, carryIn)
	c.setFlag(flagC, uint16(operand)+uint16(borrowIn) > uint16(aBefore))
}

// aluAna implements ANA/ANI's documented 8080 quirk: aux-carry is set from
// (A|operand)&0x08 rather than from an actual nibble addition, and carry is
// always cleared.
func (c *CPU8080) aluAna(operand byte) {
	c.setSZP(c.A & operand)
	c.setFlag(flagA, false)
	c.setFlag(flagC, false)
	c.setFlag(flagA, (c.A|operand)&0x08 != 0)
	c.A &= operand
}

func (c *CPU8080) aluXra(operand byte) {
	c.A ^= operand
	c.setSZP(c.A)
	c.setFlag(flagA, false)
	c.setFlag(flagC, false)
}

func (c *CPU8080) aluOra(operand byte) {
	c.A |= operand
	c.setSZP(c.A)
	c.setFlag(flagA, false)
	c.setFlag(flagC, false)
}

// aluCmp implements CMP/CPI: same arithmetic as SUB but the result is
// discarded, only flags are updated.
func (c *CPU8080) aluCmp(operand byte) {
	aBefore := c.A
	c.add3SZAPC(aBefore, ^operand, 1)
	c.setFlag(flagC, operand > aBefore)
}

func (c *CPU8080) opINR(code byte) {
	c.Ticks += 5
	if code == 6 {
		c.Ticks += 5
	}
	v := c.register(code)
	result, aux, _ := add3(v, 1, 0)
	c.setSZP(result)
	c.setFlag(flagA, aux)
	c.setRegister(code, result)
}

func (c *CPU8080) opDCR(code byte) {
	c.Ticks += 5
	if code == 6 {
		c.Ticks += 5
	}
	v := c.register(code)
	result, aux, _ := add3(v, ^byte(1), 1)
	c.setSZP(result)
	c.setFlag(flagA, aux)
	c.setRegister(code, result)
}

// opDAD adds a register pair into HL. Carry is set from a wraparound
// comparison (result < HL before the add), not a 17-bit arithmetic check -
// matching the reference semantics exactly. No other flags are touched.
func (c *CPU8080) opDAD(rp byte) {
	c.Ticks += 10
	hl := c.HL()
	var operand uint16
	switch rp {
	case 0:
		operand = c.BC()
	case 1:
		operand = c.DE()
	case 2:
		operand = c.HL()
	default:
		operand = c.SP
	}
	result := hl + operand
	c.setFlag(flagC, result < hl)
	c.SetHL(result)
}

// opDAA implements the corrected decimal-adjust semantics (see DESIGN.md,
// Open Question 3): the low-nibble correction (6, whenever the low nibble
// exceeds 9 or aux-carry is set) and the high-nibble correction (0x60,
// whenever the high nibble exceeds 9, carry is set, or the high nibble is 9
// and the low nibble exceeds 9) are both decided from the original A, then
// added together; aux-carry is recomputed from the low-nibble add. Carry is
// forced on whenever the high correction fires; otherwise it is left exactly
// as it was.
func (c *CPU8080) opDAA() {
	c.Ticks += 4
	a := c.A
	carry := c.getFlag(flagC)
	aux := c.getFlag(flagA)

	var correction byte
	if a&0x0F > 9 || aux {
		correction |= 0x06
	}
	high := a >> 4
	if high > 9 || carry || (high == 9 && a&0x0F > 9) {
		correction |= 0x60
		carry = true
	}

	newAux := (a&0x0F)+(correction&0x0F) > 0x0F
	a += correction

	c.A = a
	c.setSZP(a)
	c.setFlag(flagA, newAux)
	c.setFlag(flagC, carry)
}
