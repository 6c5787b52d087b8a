package invaders

import "testing"

// tinyROM is enough to keep the CPU spinning on a JMP-to-self without
// ever halting, so RunFrame's interrupt cadence can be exercised without
// a real Space Invaders ROM image.
func tinyROM() []byte {
	rom := make([]byte, ROMSize)
	// JMP 0x0000 at address 0, forever.
	rom[0] = 0xC3
	rom[1] = 0x00
	rom[2] = 0x00
	return rom
}

// rstROM keeps the CPU spinning on a JMP-to-self at 0x0000, like tinyROM,
// but re-enables interrupts at both RST vectors with EI so the second
// RST of a frame doesn't find interrupts masked out by the first. This
// mirrors the real ROM's interrupt handlers, which always end by
// re-arming IE before returning.
func rstROM() []byte {
	rom := make([]byte, ROMSize)
	rom[0] = 0xC3 // JMP 0x0000
	rom[1] = 0x00
	rom[2] = 0x00
	rom[0x08] = 0xFB // RST 1 vector: EI
	rom[0x10] = 0xFB // RST 2 vector: EI
	return rom
}

func TestRunFrameServicesBothInterrupts(t *testing.T) {
	m := NewMachine()
	m.LoadROM(rstROM())
	m.Reset()
	m.cpu.IE = true // interrupts must be enabled for RST to take effect

	m.RunFrame()

	// Both RST 1 (mid-frame) and RST 2 (end-of-frame) must have fired
	// within this single RunFrame call. RST 1's handler re-enables
	// interrupts with EI, so by the time end-of-frame arrives IE is back
	// on and RST 2 can be serviced too; RST only sets PC to its target, it
	// doesn't execute what's there, so the only way PC can land exactly on
	// 0x0010 (RST 2's vector, not 0x0008) is if RST 2 fired after RST 1 —
	// proving the ordering from spec.md scenario 4, not just that the
	// cycle counter didn't grow unbounded.
	if got := m.CPUState().PC; got != 0x0010 {
		t.Errorf("got PC=%#04x after RunFrame, want 0x0010 (RST 2's vector, proving both RSTs fired in order)", got)
	}
}

func TestRunFrameNoOpWhilePaused(t *testing.T) {
	m := NewMachine()
	m.LoadROM(tinyROM())
	m.Reset()
	m.SetPaused(true)

	before := m.CPUState().CycleCount
	m.RunFrame()
	after := m.CPUState().CycleCount

	if before != after {
		t.Errorf("RunFrame advanced the CPU while paused: %d -> %d", before, after)
	}
}

func TestStepWorksWhilePaused(t *testing.T) {
	m := NewMachine()
	m.LoadROM(tinyROM())
	m.Reset()
	m.SetPaused(true)

	before := m.CPUState().CycleCount
	m.Step()
	after := m.CPUState().CycleCount

	if after <= before {
		t.Error("Step must advance the CPU even while paused")
	}
}

func TestResetReloadsROMAndClearsRAM(t *testing.T) {
	m := NewMachine()
	m.LoadROM(tinyROM())
	m.Reset()

	m.mem.Write(0x2100, 0x55)
	m.cpu.A = 0x99

	m.Reset()

	if m.mem.Read(0x2100) != 0 {
		t.Error("expected RAM cleared after Reset")
	}
	if m.cpu.A != 0 {
		t.Error("expected CPU registers cleared after Reset")
	}
	if m.mem.Read(0x0000) != 0xC3 {
		t.Error("expected ROM reloaded after Reset")
	}
}

func TestSetInputBitReachesPorts(t *testing.T) {
	m := NewMachine()
	m.LoadROM(tinyROM())
	m.Reset()

	m.SetInputBit(1, BitCoin, true)
	if m.ports.In(1)&(1<<BitCoin) == 0 {
		t.Error("expected coin bit set on port 1")
	}

	m.SetInputBit(1, BitCoin, false)
	if m.ports.In(1)&(1<<BitCoin) != 0 {
		t.Error("expected coin bit cleared on port 1")
	}
}

// coinCounterROM is a tiny stand-in for the real ROM's coin-handling
// routine: poll port 1's coin bit, and once it reads high, bump the
// credits counter at 0x20EB and halt. Once the coin is seen it halts instead
// of looping back, so running it
// against a synthetic ROM still gives spec.md 8 scenario 2 (coin insertion
// raises the RAM credits counter) real coverage.
func coinCounterROM() []byte {
	rom := make([]byte, ROMSize)
	copy(rom, []byte{
		0xDB, 0x01, // IN 1
		0xE6, 0x01, // ANI 0x01      (mask BitCoin)
		0xCA, 0x00, 0x00, // JZ 0x0000 (loop back while no coin)
		0x21, 0xEB, 0x20, // LXI H, 0x20EB
		0x34, // INR M
		0x76, // HLT
	})
	return rom
}

func TestInsertCoinRaisesCreditCounter(t *testing.T) {
	m := NewMachine()
	m.LoadROM(coinCounterROM())
	m.Reset()

	m.SetInputBit(1, BitCoin, true)

	for i := 0; i < 6; i++ {
		m.Step()
	}

	if got := m.ReadMemory(0x20EB, 1)[0]; got != 1 {
		t.Errorf("got credits counter=%d after coin insertion, want 1", got)
	}
}

func TestPortOutCallbackObservesWrites(t *testing.T) {
	m := NewMachine()
	m.LoadROM(tinyROM())
	m.Reset()

	var gotPort, gotValue byte
	called := false
	m.SetPortOutCallback(func(port, value byte) {
		called = true
		gotPort, gotValue = port, value
	})

	m.ports.Out(3, 0x07)

	if !called {
		t.Fatal("expected callback to be invoked on OUT")
	}
	if gotPort != 3 || gotValue != 0x07 {
		t.Errorf("got port=%d value=%#02x, want port=3 value=0x07", gotPort, gotValue)
	}
}
