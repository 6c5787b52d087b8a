package invaders

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// ROMSize is the combined size of the Space Invaders program ROM (C8).
const ROMSize = romEnd - romStart // 8192

// LoadROM reads a single 8192-byte ROM image from disk. Most re-dumped
// Space Invaders ROM sets ship as four 2 KiB segments instead (invaders.h,
// invaders.g, invaders.f, invaders.e); use LoadROMSegments for those.
func LoadROM(path string) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read rom %s", path)
	}
	if len(data) != ROMSize {
		return nil, errors.Errorf("rom %s: got %d bytes, want %d", path, len(data), ROMSize)
	}
	return data, nil
}

// LoadROMSegments reads the four 2 KiB ROM segments in their load order
// (h, g, f, e — 0x0000, 0x0800, 0x1000, 0x1800) and concatenates them into
// a single 8192-byte image.
func LoadROMSegments(hPath, gPath, fPath, ePath string) ([]byte, error) {
	const segSize = ROMSize / 4

	rom := make([]byte, 0, ROMSize)
	for _, seg := range []string{hPath, gPath, fPath, ePath} {
		data, err := ioutil.ReadFile(seg)
		if err != nil {
			return nil, errors.Wrapf(err, "read rom segment %s", seg)
		}
		if len(data) != segSize {
			return nil, errors.Errorf("rom segment %s: got %d bytes, want %d", seg, len(data), segSize)
		}
		rom = append(rom, data...)
	}
	return rom, nil
}
