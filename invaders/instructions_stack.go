package invaders

import "fmt"

// Stack family (spec.md 4.2): PUSH/POP for BC/DE/HL/PSW, plus XTHL/SPHL.
// isPSW distinguishes the PUSH/POP encoding's "11" register-pair field,
// which means PSW rather than SP in this context.

func (c *CPU) pushInst(rp byte, isPSW bool) instruction {
	return instruction{
		name:   fmt.Sprintf("PUSH %s", rpName(rp, isPSW)),
		length: 1,
		exec: func() int {
			if isPSW {
				c.push(c.psw())
			} else {
				c.push(c.getRP(rp))
			}
			return 11
		},
	}
}

func (c *CPU) popInst(rp byte, isPSW bool) instruction {
	return instruction{
		name:   fmt.Sprintf("POP %s", rpName(rp, isPSW)),
		length: 1,
		exec: func() int {
			if isPSW {
				c.setPSW(c.pop())
			} else {
				c.setRP(rp, c.pop())
			}
			return 10
		},
	}
}

// XTHL exchanges HL with the word on top of the stack.
func (c *CPU) opXTHL() int {
	top := c.readWord(c.SP)
	c.writeWord(c.SP, c.hl())
	c.setHL(top)
	return 18
}

// SPHL loads SP from HL.
func (c *CPU) opSPHL() int {
	c.SP = c.hl()
	return 5
}
