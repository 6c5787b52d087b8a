package invaders

import "testing"

func TestExtractFramebufferSingleBit(t *testing.T) {
	vram := make([]byte, videoRAMSize)
	// Byte 0 holds column y=0, bits x=0..7. Set bit 0 (x=0).
	vram[0] = 0x01

	fb := ExtractFramebuffer(vram)

	if fb[0][255] != 255 {
		t.Errorf("expected pixel (0,255) lit, got %d", fb[0][255])
	}

	count := 0
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			if fb[y][x] != 0 {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 lit pixel, got %d", count)
	}
}

func TestExtractFramebufferLastColumn(t *testing.T) {
	vram := make([]byte, videoRAMSize)
	// Last byte (index 7167) holds column y=223, bit 7 -> x=255.
	vram[videoRAMSize-1] = 0x80

	fb := ExtractFramebuffer(vram)
	if fb[223][0] != 255 {
		t.Errorf("expected pixel (223,0) lit, got %d", fb[223][0])
	}
}

func TestExtractFramebufferShorterThanVideoRAM(t *testing.T) {
	// Guards against a panic if callers ever pass a truncated slice.
	vram := make([]byte, 4)
	vram[0] = 0xFF
	fb := ExtractFramebuffer(vram)

	count := 0
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			if fb[y][x] != 0 {
				count++
			}
		}
	}
	if count != 8 {
		t.Errorf("expected 8 lit pixels from byte 0 = 0xFF, got %d", count)
	}
}
