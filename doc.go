/*
Package stacktrace augments error values with call-stack context captured at the point an
error is created or first observed, so that a later handler can report not just what
failed but where in the call chain it originated.

Capture is always an explicit call: one call to Capture() equals one point-in-time
Snapshot of the calling goroutine's stack. A Trace pairs an arbitrary error value with
such a snapshot. When a traced error crosses a layer boundary, the caller chooses between
two distinct conversions: Wrap / FromResult take a fresh snapshot ("a new failure is
detected here"), while Retrace re-types the carried error and preserves the original
snapshot ("the same failure is merely propagating"). Refer to the unit tests for usage
and details.
*/
package stacktrace
