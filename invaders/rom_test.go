package invaders

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadROMRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rom")
	if err := os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadROM(path); err == nil {
		t.Error("expected an error for a ROM of the wrong size")
	}
}

func TestLoadROMSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invaders.rom")
	data := make([]byte, ROMSize)
	data[0] = 0xC3
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	rom, err := LoadROM(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rom) != ROMSize || rom[0] != 0xC3 {
		t.Errorf("got len=%d rom[0]=%#02x, want len=%d rom[0]=0xC3", len(rom), rom[0], ROMSize)
	}
}

func TestLoadROMSegmentsConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	segSize := ROMSize / 4
	write := func(name string, fill byte) string {
		path := filepath.Join(dir, name)
		data := make([]byte, segSize)
		for i := range data {
			data[i] = fill
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	h := write("invaders.h", 0xAA)
	g := write("invaders.g", 0xBB)
	f := write("invaders.f", 0xCC)
	e := write("invaders.e", 0xDD)

	rom, err := LoadROMSegments(h, g, f, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rom) != ROMSize {
		t.Fatalf("got len=%d, want %d", len(rom), ROMSize)
	}
	if rom[0] != 0xAA || rom[segSize] != 0xBB || rom[2*segSize] != 0xCC || rom[3*segSize] != 0xDD {
		t.Error("ROM segments not concatenated in h,g,f,e order")
	}
}
