package invaders

import "testing"

// TestOpcodeTableFullyPopulated confirms every one of the 256 opcode slots
// has a decode/execute entry, including the documented-equivalent
// undocumented duplicates (spec.md 4.2).
func TestOpcodeTableFullyPopulated(t *testing.T) {
	cpu := NewCPU()
	for op := 0; op < 256; op++ {
		inst := cpu.table[op]
		if inst.exec == nil {
			t.Errorf("opcode %#02x has no executor", op)
		}
		if inst.length < 1 || inst.length > 3 {
			t.Errorf("opcode %#02x has implausible length %d", op, inst.length)
		}
	}
}

// TestUnimplementedOpcodePanics documents the diagnostic path for a nil
// table slot, guarding against a future edit leaving a gap silently.
func TestUnimplementedOpcodePanics(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.table[0x00] = instruction{name: "GAP", length: 1}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when executing an unwired opcode slot")
		}
	}()
	cpu.execute(0x00)
}
