package service

import (
	"fmt"
	"io"
)

// say writes a single status line.  Write errors are ignored, the status text is best effort output for the user.
func say(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

// flagSuffix renders the listing suffix for a flagged video, or an empty string
func flagSuffix(flagged bool, reason string) string {
	if !flagged {
		return ""
	}
	return fmt.Sprintf(" - FLAGGED (reason: %s)", reason)
}
