package dota2

// Player is one roster entry of a match
// the player slot byte carries the side in its high bit
type Player struct {
	AccountID  uint32 `json:"account_id"`
	PlayerSlot uint8  `json:"player_slot"`
	HeroID     uint8  `json:"hero_id"`
}

// Match is one record of the upstream match-history feed
type Match struct {
	MatchID     uint64   `json:"match_id"`
	MatchSeqNum uint64   `json:"match_seq_num"`
	StartTime   int64    `json:"start_time"`
	Players     []Player `json:"players"`
}
