package cpu

import (
	"runtime"
	"strings"
	"testing"

	"github.com/born-ml/maxpool/internal/parallel"
	"github.com/born-ml/maxpool/internal/tensor"
)

func TestCPUBackend_New(t *testing.T) {
	backend := New()

	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got %s", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
	if backend.Config() != parallel.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", backend.Config())
	}
}

func TestCPUBackend_NewWithConfig(t *testing.T) {
	cfg := parallel.Config{Enabled: true, NumWorkers: 3, GroupSize: 64, Strategy: parallel.StrategyTwoPhase}
	backend := NewWithConfig(cfg)

	if backend.Config() != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, backend.Config())
	}
}

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()

	if f.Arch != runtime.GOARCH {
		t.Errorf("Expected arch %s, got %s", runtime.GOARCH, f.Arch)
	}
	if f.NumCPU < 1 {
		t.Errorf("Expected at least one CPU, got %d", f.NumCPU)
	}
	if !strings.HasPrefix(f.String(), runtime.GOARCH+": ") {
		t.Errorf("Unexpected feature string %q", f.String())
	}
	if (Features{Arch: "test"}).String() != "test: scalar" {
		t.Errorf("Unexpected empty feature string %q", (Features{Arch: "test"}).String())
	}
	if (Features{Arch: "amd64", HasAVX: true, HasFMA: true}).String() != "amd64: AVX, FMA" {
		t.Errorf("Unexpected feature string %q", (Features{Arch: "amd64", HasAVX: true, HasFMA: true}).String())
	}
}
