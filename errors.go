package whosetit

import (
	"errors"
	"fmt"

	"github.com/liuxd6825/whosetit/errext"
)

var (
	// ErrRevoked is returned, or panicked with for reads, by every operation on
	// a proxy view after its handle was revoked.
	ErrRevoked = errors.New("proxy view has been revoked")

	// ErrMalformedFrame means the call site of a new-property write could not
	// be determined. No known use triggers it.
	ErrMalformedFrame = errors.New("malformed call-site frame")
)

const revokedHint = "use the object returned by Revoke() instead of the proxy view"

func revokedError(op, property string) error {
	var err error
	if property == "" {
		err = fmt.Errorf("cannot %s: %w", op, ErrRevoked)
	} else {
		err = fmt.Errorf("cannot %s %q: %w", op, property, ErrRevoked)
	}
	return errext.WithHint(err, revokedHint)
}

func malformedFrameError(property string, cause error) error {
	return fmt.Errorf("locating the write of %q: %w: %w", property, ErrMalformedFrame, cause)
}
