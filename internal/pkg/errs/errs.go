// Package errs is the single entry point to cockroachdb/errors for the service.
// Sentinels created with New compare by message and type, so every sentinel needs a distinct message.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr as an identity of err; the message and cause of err are unchanged.
// A nil err yields markErr itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// IsAny reports whether err matches at least one of refs.
func IsAny(err error, refs ...error) bool {
	if err == nil {
		return false
	}
	for _, ref := range refs {
		if cr.Is(err, ref) {
			return true
		}
	}
	return false
}

// ExtractStackLines renders the verbose form of err and keeps at most maxLines lines (all when maxLines <= 0).
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
