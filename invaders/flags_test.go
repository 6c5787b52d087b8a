package invaders

import "testing"

func TestParityEven(t *testing.T) {
	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{parityEven(0x00), true},  // zero set bits
		{parityEven(0x01), false}, // one set bit
		{parityEven(0x03), true},  // two set bits
		{parityEven(0xFF), true},  // eight set bits
		{parityEven(0x0F), true},  // four set bits
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %v, want %v", test.got, test.want)
		}
	}
}

func TestAddAuxCarry(t *testing.T) {
	if !addAuxCarry(0x0F, 0x01, false) {
		t.Error("expected auxiliary carry from 0x0F + 0x01")
	}
	if addAuxCarry(0x0E, 0x01, false) {
		t.Error("unexpected auxiliary carry from 0x0E + 0x01")
	}
}

func TestSubAuxBorrow(t *testing.T) {
	if !subAuxBorrow(0x00, 0x01, false) {
		t.Error("expected auxiliary borrow from 0x00 - 0x01")
	}
	if subAuxBorrow(0x1F, 0x01, false) {
		t.Error("unexpected auxiliary borrow from 0x1F - 0x01")
	}
}
