package invaders

// Input bit indices per the published Space Invaders hardware reference
// (spec.md 6), for use with Machine.SetInputBit(port, bit, pressed). Port
// 1 carries coin/1P controls, port 2 carries P2 controls and dip switches.
const (
	BitCoin    = 0
	BitP2Start = 1
	BitP1Start = 2
	BitP1Fire  = 4
	BitP1Left  = 5
	BitP1Right = 6

	BitP2Fire  = 4
	BitP2Left  = 5
	BitP2Right = 6
)
