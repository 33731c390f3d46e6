//go:build !notrace

package stacktrace

import (
	gostack "github.com/eluv-io/stack"
)

// CaptureFrames walks the calling goroutine's stack from the point of invocation
// outward and resolves each raw frame to a Frame, innermost first. Resolution is
// best-effort per field: an unresolved name, file or line leaves the corresponding
// field at its zero value rather than aborting the capture. A failed walk yields an
// empty slice, never an error.
func CaptureFrames() []Frame {
	return captureFrames(1)
}

// captureFrames walks and resolves the current stack, skipping the given number of
// frames above captureFrames itself, so that capture-machinery frames never appear in
// the result.
func captureFrames(skip int) []Frame {
	if !CaptureStacktrace() {
		return nil
	}

	// +1 removes the captureFrames() function
	pcs := gostack.Callers(skip + 1)
	if MaxDepth > 0 && len(pcs) > MaxDepth {
		pcs = pcs[:MaxDepth]
	}
	if len(pcs) == 0 {
		return nil
	}

	trace := gostack.TraceFrom(pcs).TrimRuntime()
	frames := make([]Frame, 0, len(trace))
	for _, call := range trace {
		fr := call.Frame()
		frames = append(frames, Frame{
			IP:         fr.PC,
			Name:       demangleName(fr.Function),
			SymbolAddr: fr.Entry,
			File:       fr.File,
			Line:       fr.Line,
		})
	}
	return frames
}
