package main

import "testing"

func TestDisassembleNOPAndHLT(t *testing.T) {
	d := NewDisassembler([]byte{0x00, 0x76})
	lines := d.Lines()
	if lines[0] != "0000: NOP" {
		t.Fatalf("line0 = %q", lines[0])
	}
	if lines[1] != "0001: HLT" {
		t.Fatalf("line1 = %q", lines[1])
	}
}

func TestDisassembleUndocumentedNOPAlias(t *testing.T) {
	d := NewDisassembler([]byte{0x08})
	if got := d.Line(); got != "0000: NOP" {
		t.Fatalf("got %q", got)
	}
}

func TestDisassembleMOV(t *testing.T) {
	d := NewDisassembler([]byte{0x78}) // MOV A,B
	if got := d.Line(); got != "0000: MOV A,B" {
		t.Fatalf("got %q", got)
	}
}

func TestDisassembleMVIAndCursorAdvance(t *testing.T) {
	d := NewDisassembler([]byte{0x06, 0x42}) // MVI B, 0x42
	if got := d.Line(); got != "0000: MVI B,#$42" {
		t.Fatalf("got %q", got)
	}
	if d.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", d.Cursor)
	}
}

func TestDisassembleLXIOperandOrder(t *testing.T) {
	d := NewDisassembler([]byte{0x21, 0x34, 0x12}) // LXI H, 0x1234
	if got := d.Line(); got != "0000: LXI H,#$1234" {
		t.Fatalf("got %q", got)
	}
}

func TestDisassemblePushPopPSW(t *testing.T) {
	d := NewDisassembler([]byte{0xF5, 0xF1})
	lines := d.Lines()
	if lines[0] != "0000: PUSH PSW" {
		t.Fatalf("line0 = %q", lines[0])
	}
	if lines[1] != "0001: POP PSW" {
		t.Fatalf("line1 = %q", lines[1])
	}
}

func TestDisassembleConditionalJumpCallReturn(t *testing.T) {
	d := NewDisassembler([]byte{
		0xC2, 0x00, 0x10, // JNZ
		0xC4, 0x00, 0x20, // CNZ
		0xC0,  // RNZ
		0xC7,  // RST 0
	})
	lines := d.Lines()
	want := []string{
		"0000: JNZ $1000",
		"0003: CNZ $2000",
		"0006: RNZ",
		"0007: RST 0",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestDisassembleALURegisterAndImmediateForms(t *testing.T) {
	d := NewDisassembler([]byte{
		0xA0,       // ANA B
		0xFE, 0x10, // CPI 0x10
	})
	lines := d.Lines()
	if lines[0] != "0000: ANA B" {
		t.Fatalf("line0 = %q", lines[0])
	}
	if lines[1] != "0001: CPI #$10" {
		t.Fatalf("line1 = %q", lines[1])
	}
}

func TestDisassembleRotateAndMiscSingleByte(t *testing.T) {
	d := NewDisassembler([]byte{0x07, 0x0F, 0x17, 0x1F, 0x27, 0x2F, 0x37, 0x3F})
	lines := d.Lines()
	want := []string{"RLC", "RRC", "RAL", "RAR", "DAA", "CMA", "STC", "CMC"}
	for i, w := range want {
		exp := "000" + string(rune('0'+i)) + ": " + w
		if lines[i] != exp {
			t.Fatalf("line %d = %q, want %q", i, lines[i], exp)
		}
	}
}

func TestDisassembleOUTandIN(t *testing.T) {
	d := NewDisassembler([]byte{0xD3, 0x04, 0xDB, 0x03})
	lines := d.Lines()
	if lines[0] != "0000: OUT #$04" {
		t.Fatalf("line0 = %q", lines[0])
	}
	if lines[1] != "0002: IN #$03" {
		t.Fatalf("line1 = %q", lines[1])
	}
}

func TestDisassembleCursorStopsAtBufferEnd(t *testing.T) {
	d := NewDisassembler([]byte{0x00})
	_ = d.Lines()
	if !d.atEnd() {
		t.Fatalf("expected atEnd after decoding the whole buffer")
	}
}

func TestDisassembleTruncatedOperandDoesNotPanic(t *testing.T) {
	d := NewDisassembler([]byte{0x21}) // LXI H, missing both operand bytes
	got := d.Line()
	if got != "0000: LXI H,#$0000" {
		t.Fatalf("got %q", got)
	}
}
