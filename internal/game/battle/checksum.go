package battle

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/turnbattle/internal/model"
)

// checksumInput is the deterministic part of a record. Wall-clock fields
// and ids are excluded so replays of the same seed hash identically.
type checksumInput struct {
	Seed     uint64        `json:"seed"`
	TeamOne  []model.Hero  `json:"teamOne"`
	TeamTwo  []model.Hero  `json:"teamTwo"`
	Rounds   []model.Round `json:"rounds"`
	Result   model.Result  `json:"result"`
	TimedOut bool          `json:"timedOut"`
}

// Checksum returns the hex BLAKE2b-256 digest of the deterministic part
// of rec.
func Checksum(rec *model.Record) string {
	raw, err := json.Marshal(checksumInput{
		Seed:     rec.Seed,
		TeamOne:  rec.TeamOne,
		TeamTwo:  rec.TeamTwo,
		Rounds:   rec.Rounds,
		Result:   rec.Result,
		TimedOut: rec.TimedOut,
	})
	if err != nil {
		// Only non-finite attribute values can get here.
		return ""
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
