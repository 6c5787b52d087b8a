package invaders

import (
	"strings"
	"testing"
)

func TestDisassembleAtSubstitutesOperands(t *testing.T) {
	cpu, mem := newTestCPU()
	loadProgram(cpu, mem, 0x0100,
		0x3E, 0x42, // MVI A,$42
		0xC3, 0x00, 0x02, // JMP $0200
		0x00, // NOP
	)

	lines := cpu.DisassembleAt(0x0100, 3)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0].Addr != 0x0100 || !strings.Contains(lines[0].Text, "$42") {
		t.Errorf("got %+v, want MVI A,$42 at 0x0100", lines[0])
	}
	if lines[1].Addr != 0x0102 || !strings.Contains(lines[1].Text, "$0200") {
		t.Errorf("got %+v, want JMP $0200 at 0x0102", lines[1])
	}
	if lines[2].Addr != 0x0105 {
		t.Errorf("got addr %#04x, want 0x0105 after a 3-byte instruction", lines[2].Addr)
	}
}
