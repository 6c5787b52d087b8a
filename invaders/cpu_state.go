package invaders

// CPUState is an immutable snapshot of the CPU for the debug panel
// (spec.md 6's cpu_state()). Copied by value so callers can retain it
// across frames without aliasing live CPU state.
type CPUState struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16

	Z, S, P, CY, AC bool
	Flags           byte // packed PSW byte, per spec.md 3

	IE         bool
	Halted     bool
	CycleCount uint64
}

// FlagsString renders the five flags as a Z80-disassembler-style letter
// row, dash where clear, for the debug panel.
func (s CPUState) FlagsString() string {
	bit := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	b := []byte{
		bit(s.S, 'S'),
		bit(s.Z, 'Z'),
		bit(s.AC, 'A'),
		bit(s.P, 'P'),
		bit(s.CY, 'C'),
	}
	return string(b)
}

// CPUState captures the current register/flag state.
func (c *CPU) CPUState() CPUState {
	return CPUState{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		Z: c.Z, S: c.S, P: c.P, CY: c.CY, AC: c.AC,
		Flags:      c.packFlags(),
		IE:         c.IE,
		Halted:     c.Halted,
		CycleCount: c.CycleCount,
	}
}
