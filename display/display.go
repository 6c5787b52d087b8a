// Package display presents a Machine's framebuffer in a window and
// forwards keyboard state into its input latches (C11/C12). Apart from the
// cmd/invaders entry point, which calls pixelgl.Run, it is the only package
// in this repository that imports pixel/pixelgl; the core invaders package
// has no notion of a window.
package display

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/go-invaders/invaders8080/invaders"
)

const (
	gameResW float64 = invaders.FramebufferWidth
	gameResH float64 = invaders.FramebufferHeight

	debugResW float64 = 420
)

// Options configures the display window (C11).
type Options struct {
	Debug      bool
	Scale      float64
	ScreenPosX float64
	ScreenPosY float64
}

// Display is a pixel/pixelgl window that blits a 256x224 one-byte-per-pixel
// framebuffer, scaled, with an optional debug side panel showing CPU
// registers, a disassembly window and port/controller state. Grounded on
// nes.Display's image.RGBA-backed sprite approach.
type Display struct {
	gameRgba  *image.RGBA
	debugRgba *image.RGBA

	window      *pixelgl.Window
	gameMatrix  pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas          *text.Atlas
	debugRegText        *text.Text
	debugInstText       *text.Text
	debugControllerText *text.Text

	isDebug bool
}

// New creates the window. Must be called on the main goroutine, and only
// after pixelgl.Run has dispatched into the caller's run function.
func New(opts Options) *Display {
	if opts.Scale == 0 {
		opts.Scale = 3
	}

	rect := image.Rect(0, 0, int(gameResW), int(gameResH))
	gameRgba := image.NewRGBA(rect)

	rect = image.Rect(0, 0, int(debugResW), int(gameResH*opts.Scale))
	debugRgba := image.NewRGBA(rect)

	gameW := gameResW * opts.Scale
	gameH := gameResH * opts.Scale

	screenW := gameW
	if opts.Debug {
		screenW += debugResW
	}

	cfg := pixelgl.WindowConfig{
		Title:    "Space Invaders",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(opts.ScreenPosX, opts.ScreenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("unable to create window: ", err)
	}

	pic := pixel.PictureDataFromImage(gameRgba)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(opts.Scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(opts.Scale), opts.Scale)

	pic = pixel.PictureDataFromImage(debugRgba)
	debugMatrix := pixel.IM.Moved(pic.Bounds().Center().Add(pixel.V(gameW, 0)))

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	regText := text.New(pixel.V(gameW+8, gameH-40), atlas)
	instText := text.New(pixel.V(gameW+8, gameH-200), atlas)
	ctrlText := text.New(pixel.V(gameW+8, gameH-340), atlas)

	return &Display{
		gameRgba:            gameRgba,
		debugRgba:           debugRgba,
		window:              window,
		gameMatrix:          gameMatrix,
		debugMatrix:         debugMatrix,
		debugAtlas:          atlas,
		debugRegText:        regText,
		debugInstText:       instText,
		debugControllerText: ctrlText,
		isDebug:             opts.Debug,
	}
}

// Window exposes the underlying pixelgl window, needed by the controller
// to poll key state and by the CLI's run loop to check Closed().
func (d *Display) Window() *pixelgl.Window { return d.window }

// DrawFrame blits fb into the game panel. A lit pixel (255) renders white
// on black, matching the monochrome cabinet (color overlay is cosmetic
// and out of scope, per spec.md's non-goals).
func (d *Display) DrawFrame(fb invaders.Framebuffer) {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	for y := 0; y < invaders.FramebufferHeight; y++ {
		for x := 0; x < invaders.FramebufferWidth; x++ {
			c := off
			if fb[y][x] != 0 {
				c = on
			}
			// image.RGBA's origin is top-left; the cabinet's rotated
			// buffer is already oriented with row 0 at the top.
			d.gameRgba.SetRGBA(x, invaders.FramebufferHeight-1-y, c)
		}
	}
}

// WriteDebugState renders CPU registers, a short disassembly window and
// controller bit state to the debug panel (no-op unless Debug was set).
func (d *Display) WriteDebugState(state invaders.CPUState, lines []invaders.DisasmLine, controllerStatus string) {
	if !d.isDebug {
		return
	}

	d.debugRegText.Clear()
	fmt.Fprintf(d.debugRegText, "PC: %04X  SP: %04X\n", state.PC, state.SP)
	fmt.Fprintf(d.debugRegText, "A:  %02X  Flags: %s\n", state.A, state.FlagsString())
	fmt.Fprintf(d.debugRegText, "B:  %02X  C: %02X\n", state.B, state.C)
	fmt.Fprintf(d.debugRegText, "D:  %02X  E: %02X\n", state.D, state.E)
	fmt.Fprintf(d.debugRegText, "H:  %02X  L: %02X\n", state.H, state.L)
	fmt.Fprintf(d.debugRegText, "IE: %v  HLT: %v\n", state.IE, state.Halted)

	d.debugInstText.Clear()
	for _, line := range lines {
		fmt.Fprintf(d.debugInstText, "%04X: %s\n", line.Addr, line.Text)
	}

	d.debugControllerText.Clear()
	fmt.Fprint(d.debugControllerText, controllerStatus)
}

// Update flips the backing images to the screen. Call once per frame.
func (d *Display) Update() {
	d.window.Clear(colornames.Black)

	sprite := spriteFromImage(d.gameRgba)
	sprite.Draw(d.window, d.gameMatrix)

	if d.isDebug {
		sprite = spriteFromImage(d.debugRgba)
		sprite.Draw(d.window, d.debugMatrix)
		d.debugRegText.Draw(d.window, pixel.IM)
		d.debugInstText.Draw(d.window, pixel.IM)
		d.debugControllerText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

func spriteFromImage(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	return pixel.NewSprite(pic, pic.Bounds())
}
