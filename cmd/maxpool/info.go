package main

import (
	"fmt"

	"github.com/born-ml/maxpool/backend/cpu"
	"github.com/born-ml/maxpool/pooling"
)

func printInfo() {
	backend := cpu.New()
	cfg := backend.Config()

	fmt.Printf("Backend:    %s\n", backend.Name())
	fmt.Printf("Features:   %s\n", cpu.DetectFeatures())
	fmt.Printf("Workers:    %d (parallel=%v, group size %d)\n", cfg.NumWorkers, cfg.Enabled, cfg.GroupSize)

	acc, err := pooling.NewAccelerator()
	if err != nil {
		fmt.Printf("Accelerator: unavailable (%v)\n", err)
		return
	}
	defer acc.Release()
	fmt.Printf("Accelerator: %s\n", acc.Name())
}
