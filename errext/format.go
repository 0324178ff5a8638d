// Package errext contains extensions for normal Go errors that are used to
// report misuse of a wrapper handle back to its caller.
package errext

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Format formats the given error as a message (string) and a map of fields.
// In case of [HasHint], it also adds the hint as a field.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]interface{})
	var herr HasHint
	if errors.As(err, &herr) {
		fields["hint"] = herr.Hint()
	}

	return err.Error(), fields
}

// Log writes err to logger at the given level, with its hint (if any) as a
// field.
func Log(logger logrus.FieldLogger, level logrus.Level, err error) {
	if err == nil {
		return
	}
	msg, fields := Format(err)
	entry := logger.WithFields(fields)
	switch level { //nolint:exhaustive
	case logrus.DebugLevel:
		entry.Debug(msg)
	case logrus.InfoLevel:
		entry.Info(msg)
	case logrus.WarnLevel:
		entry.Warn(msg)
	default:
		entry.Error(msg)
	}
}
