package invaders

import (
	"fmt"
	"strings"
)

// DisasmLine is one decoded instruction record for the debug panel's
// disassemble_at (spec.md 6), C9.
type DisasmLine struct {
	Addr  uint16
	Bytes []byte
	Text  string
}

// DisassembleAt decodes n instructions starting at pc, reusing the same
// opcode table the executor runs from (spec.md 9: "avoiding duplicated
// 256-entry tables drifting out of sync"). It only reads memory; it never
// mutates CPU or bus state, so it is safe to call from the debug panel
// mid-run.
func (c *CPU) DisassembleAt(pc uint16, n int) []DisasmLine {
	lines := make([]DisasmLine, 0, n)
	addr := pc
	for i := 0; i < n; i++ {
		inst := c.table[c.read(addr)]
		length := inst.length
		if length == 0 {
			length = 1
		}
		raw := make([]byte, length)
		for j := byte(0); j < length; j++ {
			raw[j] = c.read(addr + uint16(j))
		}
		text := formatOperand(inst.name, raw)
		lines = append(lines, DisasmLine{Addr: addr, Bytes: raw, Text: text})
		addr += uint16(length)
	}
	return lines
}

// formatOperand substitutes an instruction template's "d8"/"d16"/"a16"
// placeholder with the actual operand bytes that followed the opcode.
func formatOperand(name string, raw []byte) string {
	switch {
	case strings.Contains(name, "d16") || strings.Contains(name, "a16"):
		if len(raw) < 3 {
			return name
		}
		word := uint16(raw[1]) | uint16(raw[2])<<8
		replacement := fmt.Sprintf("$%04X", word)
		name = strings.Replace(name, "d16", replacement, 1)
		name = strings.Replace(name, "a16", replacement, 1)
		return name
	case strings.Contains(name, "d8"):
		if len(raw) < 2 {
			return name
		}
		return strings.Replace(name, "d8", fmt.Sprintf("$%02X", raw[1]), 1)
	default:
		return name
	}
}
