// Package dota2 holds the pure match-roster domain: sides, hero presence
// masks, and the roster to mask transform
package dota2

// Side is one of the two opposing teams in a match
type Side uint8

const (
	// Radiant is the side encoded with a clear player-slot high bit
	Radiant Side = iota
	// Dire is the side encoded with a set player-slot high bit
	Dire
)

// SideOf derives the side from a player slot byte
// the high bit distinguishes dire from radiant
func SideOf(slot uint8) Side {
	if slot&0x80 != 0 {
		return Dire
	}
	return Radiant
}

// String implements fmt.Stringer
func (s Side) String() string {
	if s == Dire {
		return "dire"
	}
	return "radiant"
}
