// Package xlog is a minimal env-gated debug tracer shared across the
// module, generalizing the per-file dbg() helper the teacher codebase
// used to roll independently in each package.
package xlog

import (
	"fmt"
	"io"
	"os"
)

var enabled = os.Getenv("PQBRAKE_DEBUG") == "1"

// Tracef writes a debug line to w when PQBRAKE_DEBUG=1, and is a no-op
// otherwise. No secret-bearing values should ever be passed here.
func Tracef(w io.Writer, format string, args ...any) {
	if enabled {
		fmt.Fprintf(w, format, args...)
	}
}

// Enabled reports whether debug tracing is turned on.
func Enabled() bool {
	return enabled
}
