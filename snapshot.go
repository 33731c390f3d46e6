package stacktrace

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// captureStacktrace controls whether stacktraces are captured at runtime. This is
// (obviously) a runtime setting - use the "notrace" build tag to disable stacktrace
// captures at compile time.
var captureStacktrace = atomic.Bool{}

func init() {
	SetCaptureStacktrace(true)
}

// SetCaptureStacktrace enables or disables stack captures at runtime. While disabled,
// Capture and CaptureFrames return empty snapshots.
func SetCaptureStacktrace(b bool) {
	captureStacktrace.Store(b)
}

func CaptureStacktrace() bool {
	return captureStacktrace.Load()
}

// MaxDepth bounds the number of frames recorded by a capture. A value <= 0 removes the
// bound. Resolution cost is proportional to stack depth, so deep call chains pay for
// every recorded frame.
var MaxDepth = 64

// Snapshot is the result of walking the call stack at a single point in time. Frames
// are ordered innermost first: frame 0 is the closest to the capture point. A Snapshot
// is never modified once created.
type Snapshot []Frame

// Capture takes a snapshot of the calling goroutine's stack at the point of the call.
// One call to Capture equals one point-in-time snapshot; the first frame is Capture's
// caller. A failed or disabled stack walk yields an empty snapshot, never an error -
// stack traces are a debugging aid and must not turn a successful call into a failure.
func Capture() Snapshot {
	return capture(1)
}

// capture takes a snapshot, skipping the given number of frames above capture itself.
func capture(skip int) Snapshot {
	// +1 removes the capture() function
	return Snapshot(captureFrames(skip + 1))
}

// Equal compares two snapshots frame by frame.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i, f := range s {
		if f != other[i] {
			return false
		}
	}
	return true
}

// String renders this snapshot as a "stack backtrace:" header followed by one line per
// frame. The header is written even if the snapshot is empty.
func (s Snapshot) String() string {
	b := new(bytes.Buffer)
	s.print(b)
	return b.String()
}

// print formats and prints this snapshot to the given buffer.
func (s Snapshot) print(b *bytes.Buffer) {
	b.WriteString("stack backtrace:\n")
	for i, f := range s {
		_, _ = fmt.Fprintf(b, "%4d - %s\n", i, f)
	}
}
