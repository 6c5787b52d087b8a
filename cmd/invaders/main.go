// Command invaders runs the Space Invaders emulator, either windowed
// (default) or headless for a fixed number of frames (--frames).
package main

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/go-invaders/invaders8080/display"
	"github.com/go-invaders/invaders8080/invaders"
	"github.com/go-invaders/invaders8080/sound"
)

func main() {
	var (
		romPath                string
		romH, romG, romF, romE string
		debug                  bool
		frames                 int
		scale                  float64
		mute                   bool
	)

	root := &cobra.Command{
		Use:   "invaders",
		Short: "Intel 8080 Space Invaders emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := loadROM(romPath, romH, romG, romF, romE)
			if err != nil {
				return err
			}

			m := invaders.NewMachine()
			m.LoadROM(rom)
			m.Reset()

			if frames > 0 {
				return runHeadless(m, frames)
			}

			if !mute {
				if player, err := sound.NewPlayer(); err != nil {
					fmt.Fprintln(os.Stderr, "invaders: audio disabled:", err)
				} else {
					defer player.Close()
					m.SetPortOutCallback(player.HandlePortOut)
				}
			}

			runWindowed(m, debug, scale)
			return nil
		},
	}

	root.Flags().StringVar(&romPath, "rom", "", "path to the combined 8192-byte ROM image")
	root.Flags().StringVar(&romH, "rom-h", "", "path to the invaders.h ROM segment")
	root.Flags().StringVar(&romG, "rom-g", "", "path to the invaders.g ROM segment")
	root.Flags().StringVar(&romF, "rom-f", "", "path to the invaders.f ROM segment")
	root.Flags().StringVar(&romE, "rom-e", "", "path to the invaders.e ROM segment")
	root.Flags().BoolVar(&debug, "debug", false, "enable the debug side panel")
	root.Flags().IntVar(&frames, "frames", 0, "run N frames headless and print a framebuffer checksum, instead of opening a window")
	root.Flags().Float64Var(&scale, "scale", 3, "window scale factor")
	root.Flags().BoolVar(&mute, "mute", false, "disable the approximated sound-effect beeps")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "invaders:", err)
		os.Exit(1)
	}
}

func loadROM(combined, h, g, f, e string) ([]byte, error) {
	if combined != "" {
		return invaders.LoadROM(combined)
	}
	if h != "" || g != "" || f != "" || e != "" {
		return invaders.LoadROMSegments(h, g, f, e)
	}
	return nil, fmt.Errorf("no ROM specified: pass --rom or all of --rom-h/-g/-f/-e")
}

// runHeadless drives the machine for a fixed frame count with no window,
// for scripted smoke runs, and prints a checksum of the final
// framebuffer so a CI job can diff it against a known-good run.
func runHeadless(m *invaders.Machine, frames int) error {
	for i := 0; i < frames; i++ {
		m.RunFrame()
	}
	fb := m.Framebuffer()
	sum := sha256.Sum256(flatten(fb))
	fmt.Printf("frames=%d framebuffer_sha256=%x\n", frames, sum)
	return nil
}

func flatten(fb invaders.Framebuffer) []byte {
	out := make([]byte, 0, invaders.FramebufferWidth*invaders.FramebufferHeight)
	for _, row := range fb {
		out = append(out, row[:]...)
	}
	return out
}

// runWindowed opens a display and runs the emulator interleaved on the
// main goroutine: one frame of CPU, one render, per pixelgl tick. This
// must happen inside pixelgl.Run, which takes over the OS main thread.
func runWindowed(m *invaders.Machine, debug bool, scale float64) {
	pixelgl.Run(func() {
		win := display.New(display.Options{Debug: debug, Scale: scale})
		ctrl := display.NewController()

		ctrl.OnPauseToggle = func() { m.SetPaused(!m.Paused()) }
		ctrl.OnStep = func() {
			if m.Paused() {
				m.Step()
			}
		}
		ctrl.OnReset = m.Reset

		for !win.Window().Closed() {
			ctrl.Poll(win.Window(), m)

			m.RunFrame()

			win.DrawFrame(m.Framebuffer())
			if debug {
				win.WriteDebugState(m.CPUState(), m.DisassembleAt(m.CPUState().PC, 12), ctrl.Status())
			}
			win.Update()
		}
	})
}
