package telemetry

import (
	"github.com/rs/zerolog/log"
)

// Must unwraps an instrument constructor result. Meter instrument creation
// only fails on programming errors (bad names, duplicate registration), which
// should surface at startup rather than be swallowed.
func Must[T any](value T, err error) T {
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create telemetry instrument")
	}
	return value
}
