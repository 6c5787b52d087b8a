package invaders

import "fmt"

// Data transfer family (spec.md 4.2): MOV, MVI, LXI, LDA, STA, LHLD, SHLD,
// LDAX, STAX, XCHG. None of these touch flags.

func (c *CPU) movInst(dst, src byte) instruction {
	cycles := 5
	if dst == regM || src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("MOV %s,%s", regName(dst), regName(src)),
		length: 1,
		exec: func() int {
			c.setReg8(dst, c.getReg8(src))
			return cycles
		},
	}
}

func (c *CPU) mviInst(dst byte) instruction {
	cycles := 7
	if dst == regM {
		cycles = 10
	}
	return instruction{
		name:   fmt.Sprintf("MVI %s,d8", regName(dst)),
		length: 2,
		exec: func() int {
			c.setReg8(dst, c.fetchByte())
			return cycles
		},
	}
}

func (c *CPU) lxiInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("LXI %s,d16", rpName(rp, false)),
		length: 3,
		exec: func() int {
			c.setRP(rp, c.fetchWord())
			return 10
		},
	}
}

func (c *CPU) opLDA() int {
	c.A = c.read(c.fetchWord())
	return 13
}

func (c *CPU) opSTA() int {
	c.write(c.fetchWord(), c.A)
	return 13
}

func (c *CPU) opLHLD() int {
	addr := c.fetchWord()
	c.L = c.read(addr)
	c.H = c.read(addr + 1)
	return 16
}

func (c *CPU) opSHLD() int {
	addr := c.fetchWord()
	c.write(addr, c.L)
	c.write(addr+1, c.H)
	return 16
}

// ldaxInst/staxInst only ever address BC or DE (the encoding has no HL/SP form).
func (c *CPU) ldaxInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("LDAX %s", rpName(rp, false)),
		length: 1,
		exec: func() int {
			c.A = c.read(c.getRP(rp))
			return 7
		},
	}
}

func (c *CPU) staxInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("STAX %s", rpName(rp, false)),
		length: 1,
		exec: func() int {
			c.write(c.getRP(rp), c.A)
			return 7
		},
	}
}

func (c *CPU) opXCHG() int {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	return 5
}
