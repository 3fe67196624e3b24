package core

import (
	"fmt"
	"runtime"
	"strings"
)

// Traceback holds a captured exception in renderer-neutral form: an
// ordered sequence of stack frames plus the error's type name and
// message. Any of the parts may be empty; formatters must degrade
// gracefully rather than fail.
type Traceback struct {
	Type    string
	Message string
	Frames  []Frame
}

// Frame is a single stack frame of a Traceback. Frames are ordered
// outermost first, so the frame closest to the error comes last.
type Frame struct {
	File     string
	Function string
	Line     int
}

// TracebackFromError builds a frameless Traceback from an error,
// using the error's dynamic type as the type name. Returns nil for a
// nil error.
func TracebackFromError(err error) *Traceback {
	if err == nil {
		return nil
	}
	return &Traceback{
		Type:    errTypeName(err),
		Message: err.Error(),
	}
}

// maximum number of stack frames captured per traceback
const maxFrames = 32

// CaptureTraceback builds a Traceback from an error together with the
// current call stack. skip counts frames above the caller of
// CaptureTraceback to exclude, as in runtime.Callers. Returns nil for
// a nil error.
func CaptureTraceback(skip int, err error) *Traceback {
	tb := TracebackFromError(err)
	if tb == nil {
		return nil
	}

	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return tb
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		tb.Frames = append(tb.Frames, Frame{
			File:     fr.File,
			Function: shortFuncName(fr.Function),
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}

	// runtime.Callers reports innermost first; reverse so the frame
	// nearest the error ends up adjacent to the type/message line.
	for i, j := 0, len(tb.Frames)-1; i < j; i, j = i+1, j-1 {
		tb.Frames[i], tb.Frames[j] = tb.Frames[j], tb.Frames[i]
	}
	return tb
}

// errTypeName returns the dynamic type of an error without the
// pointer marker ("*fs.PathError" becomes "fs.PathError").
func errTypeName(err error) string {
	return strings.TrimLeft(fmt.Sprintf("%T", err), "*")
}
