package invaders

import "testing"

func TestROMIsWriteProtected(t *testing.T) {
	mem := NewMemory()
	mem.LoadROM([]byte{0xAA})
	mem.Write(0x0000, 0xFF) // CPU-driven write into ROM: must be ignored

	if got := mem.Read(0x0000); got != 0xAA {
		t.Errorf("got %#02x, want ROM contents 0xAA unchanged", got)
	}
}

func TestRAMIsWritable(t *testing.T) {
	mem := NewMemory()
	mem.Write(0x2100, 0x42)
	if got := mem.Read(0x2100); got != 0x42 {
		t.Errorf("got %#02x, want 0x42", got)
	}
}

func TestResetPreservesROMClearsRAM(t *testing.T) {
	mem := NewMemory()
	mem.LoadROM([]byte{0x11, 0x22, 0x33})
	mem.Write(0x2100, 0x99)

	mem.Reset()

	if got := mem.Read(0x0001); got != 0x22 {
		t.Errorf("Reset must not touch ROM, got %#02x want 0x22", got)
	}
	if got := mem.Read(0x2100); got != 0x00 {
		t.Errorf("Reset must clear RAM, got %#02x want 0x00", got)
	}
}
