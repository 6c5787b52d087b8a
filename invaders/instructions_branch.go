package invaders

import "fmt"

// Branch family (spec.md 4.2): JMP, Jcc, CALL, Ccc, RET, Rcc, PCHL, RST.
// Calls push the return address (PC after the 3-byte instruction), which
// falls out naturally here since fetchWord already advanced PC past the
// operand before we push it.

func (c *CPU) opJMP() int {
	c.PC = c.fetchWord()
	return 10
}

func (c *CPU) jccInst(cond byte) instruction {
	return instruction{
		name:   fmt.Sprintf("J%s a16", condName(cond)),
		length: 3,
		exec: func() int {
			addr := c.fetchWord()
			if c.checkCond(cond) {
				c.PC = addr
			}
			return 10
		},
	}
}

func (c *CPU) opCALL() int {
	addr := c.fetchWord()
	c.push(c.PC)
	c.PC = addr
	return 17
}

func (c *CPU) ccondInst(cond byte) instruction {
	return instruction{
		name:   fmt.Sprintf("C%s a16", condName(cond)),
		length: 3,
		exec: func() int {
			addr := c.fetchWord()
			if c.checkCond(cond) {
				c.push(c.PC)
				c.PC = addr
				return 17
			}
			return 11
		},
	}
}

func (c *CPU) opRET() int {
	c.PC = c.pop()
	return 10
}

func (c *CPU) rcondInst(cond byte) instruction {
	return instruction{
		name:   fmt.Sprintf("R%s", condName(cond)),
		length: 1,
		exec: func() int {
			if c.checkCond(cond) {
				c.PC = c.pop()
				return 11
			}
			return 5
		},
	}
}

func (c *CPU) opPCHL() int {
	c.PC = c.hl()
	return 5
}

// RST n pushes PC and jumps to n*8 (spec.md 4.2 and the GLOSSARY). Also
// used directly by CPU.Step to service interrupts: the pending RST
// opcode byte is executed through the same code path.
func (c *CPU) rstInst(n byte) instruction {
	target := uint16(n) * 8
	return instruction{
		name:   fmt.Sprintf("RST %d", n),
		length: 1,
		exec: func() int {
			c.push(c.PC)
			c.PC = target
			return 11
		},
	}
}
