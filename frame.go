package stacktrace

import (
	"fmt"

	"github.com/ianlancetaylor/demangle"
)

// unknown is the placeholder rendered for any frame field that could not be resolved.
const unknown = "<unknown>"

// DemangleNames controls whether symbol names are demangled before being stored in a
// Frame. Pure Go symbols are never mangled and pass through unchanged; mangled names
// typically surface from cgo frames.
var DemangleNames = true

// KeepMangledNames controls the fallback for a symbol name that fails to demangle: if
// true, the raw mangled name is kept; otherwise the name is treated as unresolved and
// rendered as "<unknown>".
var KeepMangledNames = false

// Frame describes a single resolved call frame of a stack capture.
//
// Every field is optional and independently best-effort: a zero value means the
// corresponding information could not be resolved, and no field implies another is
// present. IP and SymbolAddr are opaque identifiers for display only - they are never
// dereferenced and are not stable across runs.
type Frame struct {
	// IP is the instruction pointer of the call frame.
	IP uintptr
	// Name is the demangled name of the function, or "" if unresolved.
	Name string
	// SymbolAddr is the entry address of the resolved symbol. It may differ from IP,
	// e.g. for inlined code.
	SymbolAddr uintptr
	// File is the path of the defining source file, or "" if unresolved.
	File string
	// Line is the 1-based line number, or 0 if unresolved.
	Line int
}

// String renders this frame as "<ip> - <name> (<file>:<line>)", substituting
// "<unknown>" for each unresolved field.
func (f Frame) String() string {
	name := f.Name
	if name == "" {
		name = unknown
	}
	file := f.File
	if file == "" {
		file = unknown
	}
	line := unknown
	if f.Line > 0 {
		line = fmt.Sprint(f.Line)
	}
	return fmt.Sprintf("%#014x - %s (%s:%s)", f.IP, name, file, line)
}

// demangleName applies the demangling policy to a raw symbol name as reported by the
// runtime. Returns "" if the name is treated as unresolved under the policy.
func demangleName(raw string) string {
	if raw == "" || !DemangleNames {
		return raw
	}
	name, err := demangle.ToString(raw)
	if err == nil {
		return name
	}
	if err == demangle.ErrNotMangledName || KeepMangledNames {
		return raw
	}
	return ""
}
