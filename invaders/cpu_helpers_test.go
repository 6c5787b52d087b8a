package invaders

// testMemory is a flat, unprotected 64 KiB RAM image for CPU unit tests
// that don't care about the ROM/RAM split (that's bus_test.go's job).
type testMemory struct {
	data [65536]byte
}

func (m *testMemory) Read(addr uint16) byte     { return m.data[addr] }
func (m *testMemory) Write(addr uint16, v byte) { m.data[addr] = v }

// testPorts is a PortBus stub recording IN/OUT traffic for assertions.
type testPorts struct {
	inValue   byte
	outPort   byte
	outValue  byte
	outCalled bool
}

func (p *testPorts) In(port byte) byte { return p.inValue }
func (p *testPorts) Out(port, value byte) {
	p.outPort, p.outValue, p.outCalled = port, value, true
}

func newTestCPU() (*CPU, *testMemory) {
	mem := &testMemory{}
	cpu := NewCPU()
	cpu.ConnectBus(mem)
	cpu.ConnectPorts(&testPorts{})
	return cpu, mem
}

// loadProgram writes opcode bytes at addr and sets PC there.
func loadProgram(cpu *CPU, mem *testMemory, addr uint16, bytes ...byte) {
	for i, b := range bytes {
		mem.data[addr+uint16(i)] = b
	}
	cpu.PC = addr
}
