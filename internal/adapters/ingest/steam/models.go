package steam

import "herodex/internal/core/dota2"

// wire shapes of GetMatchHistoryBySequenceNum
// the result field is required, its absence is a shape mismatch

type historyEnvelope struct {
	Result *historyResult `json:"result"`
}

type historyResult struct {
	Status  int           `json:"status"`
	Matches []dota2.Match `json:"matches"`
}
