package invaders

import "fmt"

// Logical family (spec.md 4.2): ANA, ORA, XRA, CMP, ANI, ORI, XRI, CPI,
// RLC, RRC, RAL, RAR, CMA, CMC, STC.

func (c *CPU) anaInst(src byte) instruction {
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("ANA %s", regName(src)),
		length: 1,
		exec: func() int {
			operand := c.getReg8(src)
			result := c.A & operand
			c.logicFlagsAnd(c.A, operand, result)
			c.A = result
			return cycles
		},
	}
}

func (c *CPU) oraInst(src byte) instruction {
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("ORA %s", regName(src)),
		length: 1,
		exec: func() int {
			c.A |= c.getReg8(src)
			c.logicFlagsOrXor(c.A)
			return cycles
		},
	}
}

func (c *CPU) xraInst(src byte) instruction {
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("XRA %s", regName(src)),
		length: 1,
		exec: func() int {
			c.A ^= c.getReg8(src)
			c.logicFlagsOrXor(c.A)
			return cycles
		},
	}
}

// CMP sets flags as a subtraction but discards the result (spec.md 4.2).
func (c *CPU) cmpInst(src byte) instruction {
	cycles := 4
	if src == regM {
		cycles = 7
	}
	return instruction{
		name:   fmt.Sprintf("CMP %s", regName(src)),
		length: 1,
		exec: func() int {
			c.subFlags8(c.A, c.getReg8(src), false)
			return cycles
		},
	}
}

func (c *CPU) opANI() int {
	operand := c.fetchByte()
	result := c.A & operand
	c.logicFlagsAnd(c.A, operand, result)
	c.A = result
	return 7
}

func (c *CPU) opORI() int {
	c.A |= c.fetchByte()
	c.logicFlagsOrXor(c.A)
	return 7
}

func (c *CPU) opXRI() int {
	c.A ^= c.fetchByte()
	c.logicFlagsOrXor(c.A)
	return 7
}

func (c *CPU) opCPI() int {
	c.subFlags8(c.A, c.fetchByte(), false)
	return 7
}

// RLC rotates A left by 1; CY becomes the pre-rotate bit 7 (spec.md 4.2).
func (c *CPU) opRLC() int {
	bit7 := c.A & 0x80
	c.A = (c.A << 1) | (bit7 >> 7)
	c.CY = bit7 != 0
	return 4
}

func (c *CPU) opRRC() int {
	bit0 := c.A & 0x01
	c.A = (c.A >> 1) | (bit0 << 7)
	c.CY = bit0 != 0
	return 4
}

// RAL/RAR rotate through CY rather than wrapping A's own bit.
func (c *CPU) opRAL() int {
	bit7 := c.A & 0x80
	oldCY := byte(0)
	if c.CY {
		oldCY = 1
	}
	c.A = (c.A << 1) | oldCY
	c.CY = bit7 != 0
	return 4
}

func (c *CPU) opRAR() int {
	bit0 := c.A & 0x01
	oldCY := byte(0)
	if c.CY {
		oldCY = 0x80
	}
	c.A = (c.A >> 1) | oldCY
	c.CY = bit0 != 0
	return 4
}

func (c *CPU) opCMA() int { c.A = ^c.A; return 4 }
func (c *CPU) opCMC() int { c.CY = !c.CY; return 4 }
func (c *CPU) opSTC() int { c.CY = true; return 4 }
