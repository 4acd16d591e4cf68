// Package armlog provides the structured logger shared by armbuild
// and cmd/armdemo. The pure solver core in package arm never
// imports this package — see SPEC_FULL.md §10.1.
package armlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger, following pkg/logger/logger.go's
// console-writer convention: human-readable output on stderr, with a
// caller field for quick tracing.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().
	Timestamp().
	Caller().
	Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
