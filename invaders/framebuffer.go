package invaders

// Video RAM geometry (spec.md 4.7): 7168 bytes, column-major, 32 bytes per
// column of 256 vertically-packed pixels, LSB = topmost pixel of each
// 8-pixel group.
const (
	vramBytesPerColumn = 32
	vramColumns        = videoRAMSize / vramBytesPerColumn // 224
	videoRAMSize       = videoEnd - videoStart             // 7168
)

// FramebufferWidth/Height describe the rotated output buffer (C7):
// landscape 256x224, consumed row-major by the presenter.
const (
	FramebufferWidth  = 256
	FramebufferHeight = 224
)

// Framebuffer is the rotated output of the extractor: Framebuffer[row][col],
// row in [0, FramebufferHeight), col in [0, FramebufferWidth). A lit pixel
// is 255, off is 0 (spec.md 6's "1 byte per pixel, 0 = off, 255 = on").
type Framebuffer [FramebufferHeight][FramebufferWidth]byte

// ExtractFramebuffer converts packed 1-bit video RAM into the rotated
// pixel buffer per spec.md 4.7. It only reads vram; callers own vram's
// lifetime and mutability.
//
// Source coordinate (x, y), x in [0,256) y in [0,224), maps to destination
// (y, 255-x): byte i holds column y = i/32, pixels x = (i%32)*8..+7 with
// bit 0 (LSB) the lowest x (topmost) of the group.
func ExtractFramebuffer(vram []byte) Framebuffer {
	var fb Framebuffer
	for i := 0; i < videoRAMSize && i < len(vram); i++ {
		y := i / vramBytesPerColumn
		xBase := (i % vramBytesPerColumn) * 8
		b := vram[i]
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) == 0 {
				continue
			}
			x := xBase + bit
			fb[y][255-x] = 255
		}
	}
	return fb
}
