package steam

import (
	"encoding/json"
	"fmt"

	"herodex/internal/core/dota2"
	perr "herodex/internal/platform/errors"
)

// decodeHistory parses a history page body into match records
// any deviation from the expected shape comes back as *DecodeError
// carrying the raw payload
func decodeHistory(body []byte) ([]dota2.Match, error) {
	var env historyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Raw: body, cause: err}
	}
	if env.Result == nil {
		return nil, &DecodeError{Raw: body, cause: fmt.Errorf("missing result object")}
	}
	if env.Result.Status != 1 {
		// a well formed refusal, not a shape mismatch; the feed recovers from these
		return nil, perr.Unavailablef("steam result status %d", env.Result.Status)
	}
	return env.Result.Matches, nil
}
