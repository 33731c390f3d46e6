package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameString(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			name:  "all unresolved",
			frame: Frame{},
			want:  "0x000000000000 - <unknown> (<unknown>:<unknown>)",
		},
		{
			name:  "name only",
			frame: Frame{IP: 0x42, Name: "main.run"},
			want:  "0x000000000042 - main.run (<unknown>:<unknown>)",
		},
		{
			name:  "file only",
			frame: Frame{IP: 0x42, File: "/src/main.go"},
			want:  "0x000000000042 - <unknown> (/src/main.go:<unknown>)",
		},
		{
			name:  "line only",
			frame: Frame{IP: 0x42, Line: 7},
			want:  "0x000000000042 - <unknown> (<unknown>:7)",
		},
		{
			name:  "fully resolved",
			frame: Frame{IP: 0x1234, Name: "main.run", SymbolAddr: 0x1200, File: "/src/main.go", Line: 42},
			want:  "0x000000001234 - main.run (/src/main.go:42)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, test.frame.String())
		})
	}
}

func TestDemangleName(t *testing.T) {
	defer func(dm, keep bool) {
		DemangleNames = dm
		KeepMangledNames = keep
	}(DemangleNames, KeepMangledNames)

	// an itanium-mangled C++ symbol, as surfaced by cgo frames
	const mangled = "_ZN3foo3barEv"
	// mangled prefix, but no valid encoding follows
	const invalid = "_Zxx"

	DemangleNames = true
	KeepMangledNames = false
	assert.Contains(t, demangleName(mangled), "foo::bar")
	assert.Equal(t, "", demangleName(invalid))
	assert.Equal(t, "main.run", demangleName("main.run"))
	assert.Equal(t, "", demangleName(""))

	KeepMangledNames = true
	assert.Contains(t, demangleName(mangled), "foo::bar")
	assert.Equal(t, invalid, demangleName(invalid))

	DemangleNames = false
	assert.Equal(t, mangled, demangleName(mangled))
	assert.Equal(t, "main.run", demangleName("main.run"))
}
