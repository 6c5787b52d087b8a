package invaders

// instruction is one decoded opcode slot: its mnemonic (for the
// disassembler, C9), its total byte length including the opcode, and the
// closure that performs its effect and returns the cycles actually
// consumed (conditional branches/calls/returns compute their own
// taken/not-taken count, per spec.md 4.2).
type instruction struct {
	name   string
	length byte
	exec   func() int
}

const (
	opHLT byte = 0x76
	opEI  byte = 0xFB
)

// buildOpcodeTable wires all 256 opcode slots for the given CPU. Most
// families (MOV, the register-indexed ALU ops, INR/DCR, register-pair
// ops, PUSH/POP, the conditional branch/call/return families) are
// regular bit-field encodings, so they're filled by loops over the
// 3-bit/2-bit fields rather than 150+ hand-duplicated literals; the
// remaining single-opcode instructions are assigned explicitly, the way
// the teacher's 6502 InstLookup enumerates its irregular slots.
func buildOpcodeTable(c *CPU) [256]instruction {
	var t [256]instruction

	nop := instruction{name: "NOP", length: 1, exec: c.opNOP}
	// Documented-equivalent undocumented NOP slots (spec.md 4.2).
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		t[op] = nop
	}

	// MOV r,r' — 0x40-0x7F, except 0x76 which is HLT.
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			op := 0x40 | dst<<3 | src
			if op == opHLT {
				continue
			}
			t[op] = c.movInst(dst, src)
		}
	}
	t[opHLT] = instruction{name: "HLT", length: 1, exec: c.opHLT}

	// ALU-by-register families — 0x80-0xBF.
	for r := byte(0); r < 8; r++ {
		t[0x80|r] = c.addInst(r, false)
		t[0x88|r] = c.addInst(r, true)
		t[0x90|r] = c.subInst(r, false)
		t[0x98|r] = c.subInst(r, true)
		t[0xA0|r] = c.anaInst(r)
		t[0xA8|r] = c.xraInst(r)
		t[0xB0|r] = c.oraInst(r)
		t[0xB8|r] = c.cmpInst(r)
	}

	// MVI r,d8 — one per register, at 0x06 + 8*reg.
	for r := byte(0); r < 8; r++ {
		t[0x06|r<<3] = c.mviInst(r)
	}

	// INR/DCR r — 0x04/0x05 + 8*reg.
	for r := byte(0); r < 8; r++ {
		t[0x04|r<<3] = c.inrInst(r)
		t[0x05|r<<3] = c.dcrInst(r)
	}

	// Register-pair ops — LXI/INX/DCX/DAD, 0x01/0x03/0x09/0x0B + 16*rp.
	for rp := byte(0); rp < 4; rp++ {
		t[0x01|rp<<4] = c.lxiInst(rp)
		t[0x03|rp<<4] = c.inxInst(rp)
		t[0x09|rp<<4] = c.dadInst(rp)
		t[0x0B|rp<<4] = c.dcxInst(rp)
	}

	// LDAX/STAX only exist for BC and DE.
	t[0x02] = c.staxInst(rpBC)
	t[0x0A] = c.ldaxInst(rpBC)
	t[0x12] = c.staxInst(rpDE)
	t[0x1A] = c.ldaxInst(rpDE)

	// PUSH/POP — 0xC1/0xC5 + 16*rp; rp==3 means PSW, not SP, here.
	for rp := byte(0); rp < 4; rp++ {
		isPSW := rp == rpSP
		t[0xC1|rp<<4] = c.popInst(rp, isPSW)
		t[0xC5|rp<<4] = c.pushInst(rp, isPSW)
	}

	// Conditional branch/call/return families — 0xC0/0xC2/0xC4/0xC8/0xCA/0xCC + 8*cond.
	for cond := byte(0); cond < 8; cond++ {
		t[0xC0|cond<<3] = c.rcondInst(cond)
		t[0xC2|cond<<3] = c.jccInst(cond)
		t[0xC4|cond<<3] = c.ccondInst(cond)
	}

	// RST n — 0xC7 + 8*n.
	for n := byte(0); n < 8; n++ {
		t[0xC7|n<<3] = c.rstInst(n)
	}

	// Unconditional branch/call/return, including the undocumented
	// duplicate slots that behave as their documented equivalents
	// (spec.md 4.2).
	jmp := instruction{name: "JMP a16", length: 3, exec: c.opJMP}
	call := instruction{name: "CALL a16", length: 3, exec: c.opCALL}
	ret := instruction{name: "RET", length: 1, exec: c.opRET}
	t[0xC3] = jmp
	t[0xCB] = jmp
	t[0xC9] = ret
	t[0xD9] = ret
	t[0xCD] = call
	t[0xDD] = call
	t[0xED] = call
	t[0xFD] = call

	t[0xE9] = instruction{name: "PCHL", length: 1, exec: c.opPCHL}
	t[0xE3] = instruction{name: "XTHL", length: 1, exec: c.opXTHL}
	t[0xF9] = instruction{name: "SPHL", length: 1, exec: c.opSPHL}
	t[0xEB] = instruction{name: "XCHG", length: 1, exec: c.opXCHG}

	// Immediate arithmetic/logical.
	t[0xC6] = instruction{name: "ADI d8", length: 2, exec: c.opADI}
	t[0xCE] = instruction{name: "ACI d8", length: 2, exec: c.opACI}
	t[0xD6] = instruction{name: "SUI d8", length: 2, exec: c.opSUI}
	t[0xDE] = instruction{name: "SBI d8", length: 2, exec: c.opSBI}
	t[0xE6] = instruction{name: "ANI d8", length: 2, exec: c.opANI}
	t[0xEE] = instruction{name: "XRI d8", length: 2, exec: c.opXRI}
	t[0xF6] = instruction{name: "ORI d8", length: 2, exec: c.opORI}
	t[0xFE] = instruction{name: "CPI d8", length: 2, exec: c.opCPI}

	// Rotates and carry/accumulator control.
	t[0x07] = instruction{name: "RLC", length: 1, exec: c.opRLC}
	t[0x0F] = instruction{name: "RRC", length: 1, exec: c.opRRC}
	t[0x17] = instruction{name: "RAL", length: 1, exec: c.opRAL}
	t[0x1F] = instruction{name: "RAR", length: 1, exec: c.opRAR}
	t[0x27] = instruction{name: "DAA", length: 1, exec: c.opDAA}
	t[0x2F] = instruction{name: "CMA", length: 1, exec: c.opCMA}
	t[0x37] = instruction{name: "STC", length: 1, exec: c.opSTC}
	t[0x3F] = instruction{name: "CMC", length: 1, exec: c.opCMC}

	// 16-bit load/store to memory, and accumulator direct load/store.
	t[0x22] = instruction{name: "SHLD a16", length: 3, exec: c.opSHLD}
	t[0x2A] = instruction{name: "LHLD a16", length: 3, exec: c.opLHLD}
	t[0x32] = instruction{name: "STA a16", length: 3, exec: c.opSTA}
	t[0x3A] = instruction{name: "LDA a16", length: 3, exec: c.opLDA}

	// I/O and interrupt control.
	t[0xD3] = instruction{name: "OUT d8", length: 2, exec: c.opOUT}
	t[0xDB] = instruction{name: "IN d8", length: 2, exec: c.opIN}
	t[0xF3] = instruction{name: "DI", length: 1, exec: c.opDI}
	t[opEI] = instruction{name: "EI", length: 1, exec: c.opEI}

	return t
}
