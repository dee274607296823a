package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features tracks the instruction set extensions reported for this machine.
type Features struct {
	Arch       string
	NumCPU     int
	HasSSE4    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512  bool
	HasNEON    bool
	HasAtomics bool // ARMv8.1 LSE atomics
}

// DetectFeatures reads the CPU capabilities from golang.org/x/sys/cpu.
func DetectFeatures() Features {
	return Features{
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		HasSSE4:    cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasFMA:     cpu.X86.HasFMA,
		HasAVX512:  cpu.X86.HasAVX512F,
		HasNEON:    cpu.ARM64.HasASIMD,
		HasAtomics: cpu.ARM64.HasATOMICS,
	}
}

// String returns a string describing available CPU features.
func (f Features) String() string {
	features := []string{}

	if f.HasSSE4 {
		features = append(features, "SSE4")
	}
	if f.HasAVX {
		features = append(features, "AVX")
	}
	if f.HasAVX2 {
		features = append(features, "AVX2")
	}
	if f.HasFMA {
		features = append(features, "FMA")
	}
	if f.HasAVX512 {
		features = append(features, "AVX512F")
	}
	if f.HasNEON {
		features = append(features, "NEON")
	}
	if f.HasAtomics {
		features = append(features, "LSE")
	}

	if len(features) == 0 {
		return f.Arch + ": scalar"
	}
	return f.Arch + ": " + strings.Join(features, ", ")
}
