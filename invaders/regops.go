package invaders

// Generic accessors for the 3-bit register field used throughout the 8080
// encoding (000=B 001=C 010=D 011=E 100=H 101=L 110=M(HL) 111=A). Centralizing
// this lets MOV/MVI/the ALU-by-register family and INR/DCR share one
// decode instead of 49+ hand-written MOV variants.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regM // (HL)
	regA
)

func (c *CPU) getReg8(code byte) byte {
	switch code {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regM:
		return c.read(c.hl())
	case regA:
		return c.A
	}
	panic("invaders: bad register code")
}

func (c *CPU) setReg8(code byte, v byte) {
	switch code {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regM:
		c.write(c.hl(), v)
	case regA:
		c.A = v
	default:
		panic("invaders: bad register code")
	}
}

// Register pair field used by LXI/DAD/INX/DCX/LDAX/STAX/PUSH/POP
// (00=BC 01=DE 10=HL 11=SP, or PSW in the PUSH/POP/stack context).
const (
	rpBC = iota
	rpDE
	rpHL
	rpSP
)

func (c *CPU) getRP(code byte) uint16 {
	switch code {
	case rpBC:
		return c.bc()
	case rpDE:
		return c.de()
	case rpHL:
		return c.hl()
	case rpSP:
		return c.SP
	}
	panic("invaders: bad register pair code")
}

func (c *CPU) setRP(code byte, v uint16) {
	switch code {
	case rpBC:
		c.setBC(v)
	case rpDE:
		c.setDE(v)
	case rpHL:
		c.setHL(v)
	case rpSP:
		c.SP = v
	default:
		panic("invaders: bad register pair code")
	}
}

// condition codes used by Jcc/Ccc/Rcc (000=NZ 001=Z 010=NC 011=C 100=PO 101=PE 110=P 111=M).
const (
	condNZ = iota
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

func (c *CPU) checkCond(code byte) bool {
	switch code {
	case condNZ:
		return !c.Z
	case condZ:
		return c.Z
	case condNC:
		return !c.CY
	case condC:
		return c.CY
	case condPO:
		return !c.P
	case condPE:
		return c.P
	case condP:
		return !c.S
	case condM:
		return c.S
	}
	panic("invaders: bad condition code")
}

func regName(code byte) string {
	return [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}[code]
}

func rpName(code byte, psw bool) string {
	if psw && code == rpSP {
		return "PSW"
	}
	return [4]string{"B", "D", "H", "SP"}[code]
}

func condName(code byte) string {
	return [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}[code]
}
