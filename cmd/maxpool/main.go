// Package main provides the maxpool CLI: a worked example, host information
// and a sequential versus parallel benchmark.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("maxpool %s\n", version)
	case "info":
		printInfo()
	case "demo":
		if err := runDemo(os.Stdout); err != nil {
			log.Fatalf("demo failed: %v", err)
		}
	case "bench":
		fs := flag.NewFlagSet("bench", flag.ExitOnError)
		cfg := benchConfig{}
		fs.IntVar(&cfg.width, "w", 224, "Input width")
		fs.IntVar(&cfg.height, "h", 224, "Input height")
		fs.IntVar(&cfg.depth, "d", 64, "Number of channels")
		fs.IntVar(&cfg.size, "size", 3, "Pooling window size")
		fs.IntVar(&cfg.stride, "stride", 2, "Pooling stride")
		fs.IntVar(&cfg.iters, "iters", 20, "Timed iterations per strategy")
		fs.IntVar(&cfg.workers, "workers", 0, "Worker goroutines (0 = NumCPU)")
		fs.BoolVar(&cfg.twoPhase, "two-phase", false, "Use the two-phase parallel backward")
		fs.BoolVar(&cfg.useF64, "f64", false, "Benchmark float64 instead of float32")
		if err := fs.Parse(os.Args[2:]); err != nil {
			log.Fatalf("bench: %v", err)
		}
		if err := runBench(os.Stdout, cfg); err != nil {
			log.Fatalf("bench failed: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("maxpool - spatial max pooling for channel-major feature maps")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show CPU features and accelerator availability")
	fmt.Println("  demo       Run the 4x4 worked example")
	fmt.Println("  bench      Time sequential vs parallel strategies and check they agree")
}
