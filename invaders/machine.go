package invaders

import "time"

// Frame timing (spec.md 4.6): 2 MHz / 60 Hz = 33333.33, rounded down;
// the resulting drift (20 cycles per second, about 10 ppm) is accepted.
const (
	cyclesPerSecond  = 2000000
	framesPerSecond  = 60
	midFrameCycles   = 16667
	endFrameCycles   = 33333
	frameInterval    = time.Second / framesPerSecond

	rst1Opcode = 0xCF // RST 1 (0x08) — mid-frame interrupt
	rst2Opcode = 0xD7 // RST 2 (0x10) — end-of-frame interrupt
)

// Machine owns the CPU, memory bus, I/O dispatcher and shift register,
// and drives them as a single cooperative unit (C6, and spec.md 5's
// "single-threaded and cooperative" model). It is the type that realizes
// every host-facing operation in spec.md 6.
type Machine struct {
	cpu   *CPU
	mem   *Memory
	ports *PortDispatcher
	shift *ShiftRegister

	cycleInFrame int
	paused       bool

	romImage []byte
}

// NewMachine constructs a Machine with zeroed state (spec.md 3's
// lifecycle). Call LoadROM before the first RunFrame/Step.
func NewMachine() *Machine {
	mem := NewMemory()
	shift := NewShiftRegister()
	ports := NewPortDispatcher(shift)
	cpu := NewCPU()
	cpu.ConnectBus(mem)
	cpu.ConnectPorts(ports)

	return &Machine{
		cpu:   cpu,
		mem:   mem,
		ports: ports,
		shift: shift,
	}
}

// LoadROM places the 8 KiB Space Invaders ROM image at address 0 and
// remembers it so Reset can reload it without the caller re-supplying it.
func (m *Machine) LoadROM(rom []byte) {
	m.romImage = rom
	m.mem.LoadROM(rom)
}

// Reset reinitializes the CPU, memory (reloading ROM), shift register and
// frame counters (spec.md 4.6).
func (m *Machine) Reset() {
	m.mem.Reset()
	if m.romImage != nil {
		m.mem.LoadROM(m.romImage)
	}
	m.cpu.Reset()
	m.shift.Reset()
	m.ports.reset()
	m.cycleInFrame = 0
	m.paused = false
}

// SetPaused suspends or resumes cycle advancement without disturbing CPU
// state (spec.md 4.6).
func (m *Machine) SetPaused(paused bool) { m.paused = paused }
func (m *Machine) Paused() bool          { return m.paused }

// Step executes exactly one instruction, permitted regardless of pause
// state (spec.md 6), and returns the cycles it consumed.
func (m *Machine) Step() int {
	return m.cpu.Step()
}

// runUntil repeatedly steps the CPU until the intra-frame cycle counter
// reaches or exceeds target, per spec.md 4.6.
func (m *Machine) runUntil(target int) {
	for m.cycleInFrame < target {
		m.cycleInFrame += m.cpu.Step()
	}
}

// RunFrame drives one 60 Hz frame: run to mid-frame, raise RST 1, run to
// end-of-frame, raise RST 2, then roll the frame counter over (spec.md
// 4.6). It does not sleep or pace wall clock; callers that want real-time
// pacing use Run.
func (m *Machine) RunFrame() {
	if m.paused {
		return
	}

	m.runUntil(midFrameCycles)
	m.cpu.RequestInterrupt(rst1Opcode)

	m.runUntil(endFrameCycles)
	m.cpu.RequestInterrupt(rst2Opcode)
	// No frame time remains for normal execution after the end-of-frame
	// interrupt, so service it immediately rather than leaving it pending
	// for whatever Step happens to run next.
	m.cycleInFrame += m.cpu.Step()

	// Carry any overshoot into the next frame rather than discarding it.
	m.cycleInFrame -= endFrameCycles
}

// Run drives the machine continuously, pacing RunFrame calls to 60 Hz,
// until stop is closed. Intended for a headless/CLI run loop; an
// interleaved host (display-driven) should call RunFrame itself between
// its own render calls instead (spec.md 5's preferred model).
func (m *Machine) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.RunFrame()
		}
	}
}

// SetInputBit updates an input latch bit (spec.md 6).
func (m *Machine) SetInputBit(port, bit int, pressed bool) {
	m.ports.SetInputBit(port, bit, pressed)
}

// SetPortOutCallback installs the host's observer for OUT writes,
// exposing the sound ports per spec.md 6.
func (m *Machine) SetPortOutCallback(fn func(port, value byte)) {
	m.ports.SetPortOutCallback(fn)
}

// Framebuffer extracts the current display buffer (C7). Called once per
// frame by the presenter.
func (m *Machine) Framebuffer() Framebuffer {
	return ExtractFramebuffer(m.mem.videoRAM())
}

// CPUState snapshots CPU registers/flags for the debug panel (spec.md 6).
func (m *Machine) CPUState() CPUState {
	return m.cpu.CPUState()
}

// DisassembleAt decodes n instructions starting at pc (spec.md 6, C9).
func (m *Machine) DisassembleAt(pc uint16, n int) []DisasmLine {
	return m.cpu.DisassembleAt(pc, n)
}

// ReadMemory returns a copy of length bytes starting at addr, for the
// debug panel (spec.md 6). A copy, not a slice into live memory, so the
// debug panel can't accidentally mutate running state.
func (m *Machine) ReadMemory(addr uint16, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = m.mem.Read(addr + uint16(i))
	}
	return out
}
