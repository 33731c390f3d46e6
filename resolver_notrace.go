//go:build notrace

package stacktrace

// captureFrames is a noop implementation that disables stack collection when the
// notrace build tag is set. See resolver.go for further information.
func captureFrames(int) []Frame { return nil }

func CaptureFrames() []Frame { return nil }
