package dota2

import "math/bits"

// Mask is a 256-bit hero presence set
// bit h set means hero h is present on that side
type Mask [4]uint64

// Set marks hero as present
func (m *Mask) Set(hero uint8) { m[hero>>6] |= 1 << (hero & 63) }

// Has reports whether hero is present
func (m Mask) Has(hero uint8) bool { return m[hero>>6]&(1<<(hero&63)) != 0 }

// Empty reports whether no hero is present
func (m Mask) Empty() bool { return m == Mask{} }

// Heroes returns the present hero ids in ascending order
func (m Mask) Heroes() []uint8 {
	out := make([]uint8, 0, 5)
	for w, word := range m {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, uint8(w<<6+b))
			word &= word - 1
		}
	}
	return out
}

// MatchMask is the per-match two-sided hero presence representation
// it is derived deterministically from exactly one Match
type MatchMask struct {
	MatchID uint64
	Radiant Mask
	Dire    Mask
}

// MaskOf transforms a match roster into its MatchMask
// hero id 0 sets bit 0, callers must never query hero 0 so this is harmless
func MaskOf(m Match) MatchMask {
	mask := MatchMask{MatchID: m.MatchID}
	for _, p := range m.Players {
		switch SideOf(p.PlayerSlot) {
		case Dire:
			mask.Dire.Set(p.HeroID)
		default:
			mask.Radiant.Set(p.HeroID)
		}
	}
	return mask
}
