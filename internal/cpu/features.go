// Package cpu reports the CPU features of the host process.
//
// The transform engine is pure Go and does not branch on these flags; they
// are reported by the CLI and logged alongside benchmark results so timings
// can be compared across machines.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to numeric throughput.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasFMA       bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// Flags returns the names of the features that are present, in a fixed order.
func (f Features) Flags() []string {
	flags := make([]string, 0, 8)

	for _, fl := range []struct {
		name string
		on   bool
	}{
		{"sse2", f.HasSSE2},
		{"sse3", f.HasSSE3},
		{"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"fma", f.HasFMA},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	} {
		if fl.on {
			flags = append(flags, fl.name)
		}
	}

	return flags
}

// String renders the architecture and present flags, e.g. "amd64 [sse2 avx2]".
func (f Features) String() string {
	return f.Architecture + " [" + strings.Join(f.Flags(), " ") + "]"
}
