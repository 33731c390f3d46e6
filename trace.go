package stacktrace

import (
	"bytes"
	"fmt"
	"reflect"
)

// Trace pairs an error value with the Snapshot taken at the point the error condition
// first became traced. Both are exclusively owned by the Trace and never mutated:
// conversions such as Wrap and Retrace produce new Trace instances.
//
// The snapshot is not necessarily the stack where the current error value originated -
// a preserving conversion (Retrace) re-types the error while carrying the snapshot of
// an earlier Trace.
type Trace[E any] struct {
	err   E
	stack Snapshot
}

// New pairs the given error with a fresh snapshot of the current stack. Use when an
// error condition is first detected.
func New[E any](err E) *Trace[E] {
	return &Trace[E]{err: err, stack: capture(1)}
}

// Wrap converts the given error to the target type and pairs it with a fresh snapshot
// of the current stack. This is the "new error detected here" path - use Retrace to
// re-type an already traced error without discarding its snapshot.
func Wrap[S, D any](err S, convert func(S) D) *Trace[D] {
	return &Trace[D]{err: convert(err), stack: capture(1)}
}

// FromResult passes a successful result through unchanged, performing no capture. On
// failure it converts the error and pairs it with a fresh snapshot: the failure first
// becomes traced here.
//
// A nil error - including a typed nil wrapped in a non-nil interface value - counts as
// success.
func FromResult[A any, S error, D any](val A, err S, convert func(S) D) (A, *Trace[D]) {
	if isNilError(err) {
		return val, nil
	}
	return val, &Trace[D]{err: convert(err), stack: capture(1)}
}

// Retrace passes a successful result through unchanged. On failure it converts the
// inner error of the given Trace but preserves the original snapshot: the error is
// merely re-typed while propagating, and the stack of interest is where it was first
// traced, not this relay point.
func Retrace[A any, S, D any](val A, t *Trace[S], convert func(S) D) (A, *Trace[D]) {
	if t == nil {
		return val, nil
	}
	return val, &Trace[D]{err: convert(t.err), stack: t.stack}
}

// Err returns the carried error value.
func (t *Trace[E]) Err() E {
	if t == nil {
		var zero E
		return zero
	}
	return t.err
}

// Stack returns the snapshot associated with this trace.
func (t *Trace[E]) Stack() Snapshot {
	if t == nil {
		return nil
	}
	return t.stack
}

// Unwrap returns the carried error if it implements the error interface, allowing a
// Trace to participate in errors.Is and errors.As chains. Returns nil otherwise.
func (t *Trace[E]) Unwrap() error {
	if t == nil {
		return nil
	}
	if err, ok := any(t.err).(error); ok {
		return err
	}
	return nil
}

// Error returns the carried error's own textual form followed by the rendered snapshot.
func (t *Trace[E]) Error() string {
	if t == nil {
		return ""
	}
	b := new(bytes.Buffer)
	_, _ = fmt.Fprintf(b, "%v\n", t.err)
	t.stack.print(b)
	return b.String()
}

// ErrorNoTrace returns the error as string just like Error() but omits the stack trace.
func (t *Trace[E]) ErrorNoTrace() string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%v", t.err)
}

// isNilError reports whether the given error is nil or a typed nil wrapped in a non-nil
// interface value.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
