package systems

import (
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger replaces the debug logger used by every system
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "sim").Logger()
}

// Logger returns the debug logger
func Logger() *zerolog.Logger {
	return &logger
}
