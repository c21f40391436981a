package census

import "math/bits"

// TieState is the joint state of the two directed ties of a dyad (i, j)
// with i < j. Bit 0 is i→j, bit 1 is j→i.
type TieState uint8

const (
	Null    TieState = 0
	AsymOut TieState = 1 // i→j only
	AsymIn  TieState = 2 // j→i only
	Mutual  TieState = 3
)

// StateOf combines the two directed lookups of a dyad.
func StateOf(ij, ji bool) TieState {
	var s TieState
	if ij {
		s |= AsymOut
	}
	if ji {
		s |= AsymIn
	}
	return s
}

// Asymmetric reports whether exactly one direction is present.
func (s TieState) Asymmetric() bool {
	return s == AsymOut || s == AsymIn
}

func (s TieState) String() string {
	switch s {
	case Null:
		return "null"
	case AsymOut:
		return "asym-out"
	case AsymIn:
		return "asym-in"
	case Mutual:
		return "mutual"
	}
	return "invalid"
}

// Dyad is one unordered node pair of a layer-pair comparison: local indices
// I < J, the tie-state in the reference layer and in the observed layer.
type Dyad struct {
	Layer int
	I, J  int
	Ref   TieState
	Obs   TieState
}

// Omitted counts directed ties present in the reference but missing from the
// observed layer.
func (d Dyad) Omitted() int {
	return bits.OnesCount8(uint8(d.Ref &^ d.Obs))
}

// Committed counts directed ties present in the observed layer but missing
// from the reference.
func (d Dyad) Committed() int {
	return bits.OnesCount8(uint8(d.Obs &^ d.Ref))
}
