// Package sound turns OUT writes to Space Invaders' two sound ports into
// short synthesized tones. spec.md's non-goals exclude exact analog
// synthesis of the original discrete sound board; this is a cosmetic
// approximation (one square-wave burst per effect bit), not a model of
// the real circuitry, and is entirely optional — wiring nothing into
// Machine.SetPortOutCallback leaves the emulator silent but otherwise
// unaffected, per spec.md's "exposes the port writes but is not required
// to play sounds".
package sound

import (
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

// effect is one discrete sound-board bit. Frequencies are an arbitrary,
// recognizable-by-ear assignment, not a reproduction of the real PCM/
// analog samples the cabinet plays.
type effect struct {
	freq     float64
	duration int // samples
}

// slot identifies one (port, bit) effect uniquely, since ports 3 and 5
// both use bits 0-4 for unrelated effects.
type slot struct {
	port byte
	bit  int
}

// effects maps each (port, bit) pair to a synthesized tone. Only the
// one-shot effects are modeled (ufo/shot/player-die/invader-die/
// extra-life on port 3 bits 0-4, fleet-movement thumps and UFO-hit on
// port 5 bits 0-4); bits with no assigned effect are ignored.
var effects = map[slot]effect{
	{3, 0}: {freq: 120, duration: sampleRate / 2},  // UFO flying
	{3, 1}: {freq: 440, duration: sampleRate / 10}, // player shot
	{3, 2}: {freq: 90, duration: sampleRate / 3},   // player killed
	{3, 3}: {freq: 660, duration: sampleRate / 8},  // invader killed
	{3, 4}: {freq: 880, duration: sampleRate / 6},  // extra life

	{5, 0}: {freq: 150, duration: sampleRate / 12}, // fleet movement 1
	{5, 1}: {freq: 180, duration: sampleRate / 12}, // fleet movement 2
	{5, 2}: {freq: 210, duration: sampleRate / 12}, // fleet movement 3
	{5, 3}: {freq: 240, duration: sampleRate / 12}, // fleet movement 4
	{5, 4}: {freq: 1000, duration: sampleRate / 5}, // UFO killed
}

var slots = orderedSlots()

func orderedSlots() []slot {
	s := make([]slot, 0, len(effects))
	for k := range effects {
		s = append(s, k)
	}
	return s
}

// voice is one active tone, accessed only from the audio callback
// goroutine once Read starts being called, so it needs no
// synchronization of its own.
type voice struct {
	remaining int
	phase     float64
}

// Player streams synthesized sound effects to the host's audio device
// via oto, grounded on IntuitionEngine's OtoPlayer (an io.Reader handed
// to oto.Context.NewPlayer, filled from emulator-triggered state rather
// than a precomputed buffer).
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	voices []voice // parallel to slots
	queued []int32 // atomically set by HandlePortOut, drained by Read

	lastPort3, lastPort5 byte
}

// NewPlayer opens the default audio device. Returns an error if none is
// available; callers should treat that as non-fatal and simply not wire
// HandlePortOut.
func NewPlayer() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		voices: make([]voice, len(slots)),
		queued: make([]int32, len(slots)),
	}
	p.player = ctx.NewPlayer(p)
	p.player.Play()
	return p, nil
}

// HandlePortOut is installed via Machine.SetPortOutCallback. It triggers
// a tone on the rising edge of each known effect bit (the board's real
// samples also only start on a 0->1 transition; a held-high bit doesn't
// retrigger).
func (p *Player) HandlePortOut(port, value byte) {
	if port != 3 && port != 5 {
		return
	}

	var prev *byte
	if port == 3 {
		prev = &p.lastPort3
	} else {
		prev = &p.lastPort5
	}

	rising := value &^ *prev
	*prev = value

	for i, s := range slots {
		if s.port != port {
			continue
		}
		if rising&(1<<uint(s.bit)) != 0 {
			atomic.StoreInt32(&p.queued[i], int32(effects[s].duration))
		}
	}
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	if p.player != nil {
		p.player.Close()
	}
}

// Read implements io.Reader for oto.Context.NewPlayer: it synthesizes
// the next chunk of mixed square-wave samples, picking up any bits
// HandlePortOut queued since the last call.
func (p *Player) Read(out []byte) (int, error) {
	n := len(out) / 4 // 4 bytes per float32 sample, mono

	for i := range p.voices {
		if d := atomic.SwapInt32(&p.queued[i], 0); d > 0 {
			p.voices[i] = voice{remaining: int(d)}
		}
	}

	for i := 0; i < n; i++ {
		var sample float32
		for vi, s := range slots {
			v := &p.voices[vi]
			if v.remaining <= 0 {
				continue
			}
			freq := effects[s].freq
			sample += float32(0.15 * square(v.phase))
			v.phase += freq / sampleRate
			if v.phase >= 1 {
				v.phase -= 1
			}
			v.remaining--
		}
		putFloat32LE(out[i*4:], sample)
	}
	return n * 4, nil
}

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
