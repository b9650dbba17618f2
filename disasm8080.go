// disasm8080.go - stateless Intel 8080 disassembler

package main

import "fmt"

var disasmRegNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var disasmRPNames = [4]string{"B", "D", "H", "SP"}
var disasmPushPopNames = [4]string{"B", "D", "H", "PSW"}
var disasmCondNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// Disassembler decodes a byte buffer into one mnemonic line per instruction.
// It holds no CPU state of its own; Cursor is the only mutable field, and
// decoding a program twice from the same starting cursor always yields the
// same lines.
type Disassembler struct {
	Program []byte
	Cursor  int
}

func NewDisassembler(program []byte) *Disassembler {
	return &Disassembler{Program: program}
}

func (d *Disassembler) atEnd() bool {
	return d.Cursor >= len(d.Program)
}

func (d *Disassembler) fetch() byte {
	b := d.Program[d.Cursor]
	d.Cursor++
	return b
}

// Line decodes the instruction at the current cursor and advances past it,
// returning the formatted "addr: MNEMONIC operands" line. The cursor always
// advances by at least one byte, even for an unrecognized opcode.
func (d *Disassembler) Line() string {
	addr := d.Cursor
	opcode := d.fetch()
	mnemonic := d.decode(opcode)
	return fmt.Sprintf("%04X: %s", addr, mnemonic)
}

// Lines decodes every instruction from the current cursor to the end of the
// program.
func (d *Disassembler) Lines() []string {
	var lines []string
	for !d.atEnd() {
		lines = append(lines, d.Line())
	}
	return lines
}

func (d *Disassembler) fetchByteOperand() byte {
	if d.atEnd() {
		return 0
	}
	return d.fetch()
}

// fetchWordOperand reads a little-endian 16-bit immediate, returning the
// two raw bytes in source order (low byte first); callers print them high
// byte first, as the decoded 16-bit value.
func (d *Disassembler) fetchWordOperand() (lo, hi byte) {
	lo = d.fetchByteOperand()
	hi = d.fetchByteOperand()
	return
}

func (d *Disassembler) decode(opcode byte) string {
	ddd := (opcode >> 3) & 0x7
	sss := opcode & 0x7
	rp := (opcode >> 4) & 0x3
	alu := (opcode >> 3) & 0x7
	cc := (opcode >> 3) & 0x7

	switch {
	case opcode == 0x00:
		return "NOP"
	case opcode&0xC7 == 0x00 && opcode != 0x00:
		return "NOP" // undocumented alternate encoding
	case opcode == 0x76:
		return "HLT"
	case opcode&0xC0 == 0x40:
		return fmt.Sprintf("MOV %s,%s", disasmRegNames[ddd], disasmRegNames[sss])
	case opcode&0xC7 == 0x06:
		return fmt.Sprintf("MVI %s,#$%02X", disasmRegNames[ddd], d.fetchByteOperand())
	case opcode&0xC7 == 0x04:
		return fmt.Sprintf("INR %s", disasmRegNames[ddd])
	case opcode&0xC7 == 0x05:
		return fmt.Sprintf("DCR %s", disasmRegNames[ddd])
	case opcode&0xCF == 0x01:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("LXI %s,#$%02X%02X", disasmRPNames[rp], hi, lo)
	case opcode&0xCF == 0x09:
		return fmt.Sprintf("DAD %s", disasmRPNames[rp])
	case opcode&0xCF == 0x03:
		return fmt.Sprintf("INX %s", disasmRPNames[rp])
	case opcode&0xCF == 0x0B:
		return fmt.Sprintf("DCX %s", disasmRPNames[rp])
	case opcode == 0x02:
		return "STAX B"
	case opcode == 0x12:
		return "STAX D"
	case opcode == 0x0A:
		return "LDAX B"
	case opcode == 0x1A:
		return "LDAX D"
	case opcode&0xCF == 0xC5:
		return fmt.Sprintf("PUSH %s", disasmPushPopNames[rp])
	case opcode&0xCF == 0xC1:
		return fmt.Sprintf("POP %s", disasmPushPopNames[rp])
	case opcode == 0x07:
		return "RLC"
	case opcode == 0x0F:
		return "RRC"
	case opcode == 0x17:
		return "RAL"
	case opcode == 0x1F:
		return "RAR"
	case opcode == 0x27:
		return "DAA"
	case opcode == 0x2F:
		return "CMA"
	case opcode == 0x37:
		return "STC"
	case opcode == 0x3F:
		return "CMC"
	case opcode == 0x22:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("SHLD $%02X%02X", hi, lo)
	case opcode == 0x2A:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("LHLD $%02X%02X", hi, lo)
	case opcode == 0x32:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("STA $%02X%02X", hi, lo)
	case opcode == 0x3A:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("LDA $%02X%02X", hi, lo)
	case opcode == 0xEB:
		return "XCHG"
	case opcode == 0xE3:
		return "XTHL"
	case opcode == 0xF9:
		return "SPHL"
	case opcode == 0xE9:
		return "PCHL"
	case opcode == 0xC3, opcode == 0xCB:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("JMP $%02X%02X", hi, lo)
	case opcode&0xC7 == 0xC2:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("J%s $%02X%02X", disasmCondNames[cc], hi, lo)
	case opcode == 0xCD, opcode == 0xDD, opcode == 0xED, opcode == 0xFD:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("CALL $%02X%02X", hi, lo)
	case opcode&0xC7 == 0xC4:
		lo, hi := d.fetchWordOperand()
		return fmt.Sprintf("C%s $%02X%02X", disasmCondNames[cc], hi, lo)
	case opcode == 0xC9, opcode == 0xD9:
		return "RET"
	case opcode&0xC7 == 0xC0:
		return fmt.Sprintf("R%s", disasmCondNames[cc])
	case opcode&0xC7 == 0xC7:
		return fmt.Sprintf("RST %d", alu)
	case opcode == 0xD3:
		return fmt.Sprintf("OUT #$%02X", d.fetchByteOperand())
	case opcode == 0xDB:
		return fmt.Sprintf("IN #$%02X", d.fetchByteOperand())
	case opcode == 0xF3:
		return "DI"
	case opcode == 0xFB:
		return "EI"
	case opcode&0xC0 == 0x80:
		return fmt.Sprintf("%s %s", disasmALUMnemonic(alu), disasmRegNames[sss])
	case opcode&0xC7 == 0xC6:
		return fmt.Sprintf("%s #$%02X", disasmALUImmediateMnemonic(alu), d.fetchByteOperand())
	default:
		return fmt.Sprintf("invalid opcode: %#b %#02x", opcode, opcode)
	}
}

var disasmALURegMnemonics = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
var disasmALUImmMnemonics = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

func disasmALUMnemonic(alu byte) string          { return disasmALURegMnemonics[alu] }
func disasmALUImmediateMnemonic(alu byte) string { return disasmALUImmMnemonics[alu] }
