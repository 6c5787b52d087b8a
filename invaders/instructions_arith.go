package invaders

import "fmt"

// Arithmetic family (spec.md 4.2): ADD, ADC, SUB, SBB, INR, DCR, INX, DCX,
// DAD, DAA.

func (c *CPU) addInst(src byte, withCarry bool) instruction {
	name := "ADD"
	if withCarry {
		name = "ADC"
	}
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("%s %s", name, regName(src)),
		length: 1,
		exec: func() int {
			carryIn := withCarry && c.CY
			c.A = c.addFlags8(c.A, c.getReg8(src), carryIn)
			return cycles
		},
	}
}

func (c *CPU) subInst(src byte, withBorrow bool) instruction {
	name := "SUB"
	if withBorrow {
		name = "SBB"
	}
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("%s %s", name, regName(src)),
		length: 1,
		exec: func() int {
			borrowIn := withBorrow && c.CY
			c.A = c.subFlags8(c.A, c.getReg8(src), borrowIn)
			return cycles
		},
	}
}

func (c *CPU) opADI() int { c.A = c.addFlags8(c.A, c.fetchByte(), false); return 7 }
func (c *CPU) opACI() int { c.A = c.addFlags8(c.A, c.fetchByte(), c.CY); return 7 }
func (c *CPU) opSUI() int { c.A = c.subFlags8(c.A, c.fetchByte(), false); return 7 }
func (c *CPU) opSBI() int { c.A = c.subFlags8(c.A, c.fetchByte(), c.CY); return 7 }

func (c *CPU) inrInst(dst byte) instruction {
	cycles := 5
	if dst == regM {
		cycles = 10
	}
	return instruction{
		name:   fmt.Sprintf("INR %s", regName(dst)),
		length: 1,
		exec: func() int {
			result := c.getReg8(dst) + 1
			c.setReg8(dst, result)
			c.incFlags(result)
			return cycles
		},
	}
}

func (c *CPU) dcrInst(dst byte) instruction {
	cycles := 5
	if dst == regM {
		cycles = 10
	}
	return instruction{
		name:   fmt.Sprintf("DCR %s", regName(dst)),
		length: 1,
		exec: func() int {
			result := c.getReg8(dst) - 1
			c.setReg8(dst, result)
			c.decFlags(result)
			return cycles
		},
	}
}

// INX/DCX set no flags per spec.md 4.2.
func (c *CPU) inxInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("INX %s", rpName(rp, false)),
		length: 1,
		exec: func() int {
			c.setRP(rp, c.getRP(rp)+1)
			return 5
		},
	}
}

func (c *CPU) dcxInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("DCX %s", rpName(rp, false)),
		length: 1,
		exec: func() int {
			c.setRP(rp, c.getRP(rp)-1)
			return 5
		},
	}
}

// DAD sets only CY (spec.md 4.2), from the carry out of bit 15.
func (c *CPU) dadInst(rp byte) instruction {
	return instruction{
		name:   fmt.Sprintf("DAD %s", rpName(rp, false)),
		length: 1,
		exec: func() int {
			hl := c.hl()
			operand := c.getRP(rp)
			result := uint32(hl) + uint32(operand)
			c.CY = result > 0xFFFF
			c.setHL(uint16(result))
			return 10
		},
	}
}

// DAA performs the binary-coded-decimal adjustment described in spec.md 4.2.
func (c *CPU) opDAA() int {
	a := c.A
	cy := c.CY
	ac := c.AC

	if a&0x0F > 9 || ac {
		cy = cy || (a+6 < a) // carry out of the low-nibble add
		ac = true
		a += 6
	} else {
		ac = false
	}

	if a&0xF0 > 0x90 || cy {
		cy = cy || (uint16(a)+0x60 > 0xFF)
		a += 0x60
	}

	c.A = a
	c.CY = cy
	c.AC = ac
	c.szp(a)
	return 4
}
