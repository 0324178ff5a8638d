// Package callsite captures the Go call site that issued a write through a
// proxy view and resolves its column from the source file.
package callsite

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrShallowStack is returned when the call chain has fewer frames than the
// caller asked to skip.
var ErrShallowStack = errors.New("call stack is too shallow")

// Site is the position of a single call in Go source.
type Site struct {
	Function string
	File     string
	Line     int
	// Column is 1-based, 0 when it could not be resolved.
	Column int
}

func (s Site) String() string {
	return fmt.Sprintf("%s (%s:%d:%d)", s.Function, s.File, s.Line, s.Column)
}

// Capture returns the frame skip levels above the function calling Capture:
// Capture(0) is that function itself, Capture(1) its caller and so on.
// Inlined calls count as frames of their own.
func Capture(skip int) (Site, error) {
	if skip < 0 {
		skip = 0
	}
	pcs := make([]uintptr, skip+16)
	// 1 leaves runtime.Callers out, so the first logical frame is Capture.
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for i := 0; ; {
		frame, more := frames.Next()
		// Method value wrappers are not calls anyone wrote.
		if frame.File == "<autogenerated>" {
			if !more {
				break
			}
			continue
		}
		if i == skip+1 {
			if frame.File == "" || frame.Line == 0 {
				break
			}
			return Site{Function: frame.Function, File: frame.File, Line: frame.Line}, nil
		}
		if !more {
			break
		}
		i++
	}

	return Site{}, fmt.Errorf("%w: no frame at depth %d", ErrShallowStack, skip)
}
