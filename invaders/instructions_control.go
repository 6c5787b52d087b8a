package invaders

// I/O and control family (spec.md 4.2): IN, OUT, EI, DI, HLT, NOP.

func (c *CPU) opIN() int {
	port := c.fetchByte()
	c.A = c.ports.In(port)
	return 10
}

func (c *CPU) opOUT() int {
	port := c.fetchByte()
	c.ports.Out(port, c.A)
	return 10
}

// EI arms the one-instruction interrupt-enable delay; CPU.Step resolves it
// after the next non-EI instruction completes (spec.md 4.2).
func (c *CPU) opEI() int {
	c.eiArmed = true
	return 4
}

func (c *CPU) opDI() int {
	c.IE = false
	c.eiArmed = false
	return 4
}

func (c *CPU) opHLT() int {
	c.Halted = true
	return 7
}

func (c *CPU) opNOP() int { return 4 }
