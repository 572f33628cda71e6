// Package init sets up environment defaults before any other packages
// initialize. Import this package with a blank identifier as the first
// import so logging defaults apply before anything logs.
package init

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.DurationFieldUnit = time.Millisecond

	if level := os.Getenv("GLASSPANE_LOG_LEVEL"); level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			zerolog.SetGlobalLevel(parsed)
		}
	}
}
