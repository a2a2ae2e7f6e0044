package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

// SessionPrefix marks remote picker session IDs.
const SessionPrefix = "ses_"

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(time.Millisecond).
		WithNumRandomChars(4)

	generator = fid.MustNewGenerator(config)
}

// Session returns a new unique session ID.
func Session() string {
	return SessionPrefix + generator.MustGenerate()
}
