package errext

import "errors"

// HasHint is an error that tells the user what to do about it, for example
// that a proxy view must not be used after Revoke().
type HasHint interface {
	error
	Hint() string
}

// WithHint returns err carrying hint, or nil for a nil err. Hints stack:
// wrapping an error that already has one renders as "hint (inner hint)".
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return hinted{err: err, hint: hint}
}

type hinted struct {
	err  error
	hint string
}

var _ HasHint = hinted{}

func (h hinted) Error() string { return h.err.Error() }

func (h hinted) Unwrap() error { return h.err }

func (h hinted) Hint() string {
	var inner HasHint
	if !errors.As(h.err, &inner) {
		return h.hint
	}
	return h.hint + " (" + inner.Hint() + ")"
}
