package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"vdfmint/internal/progressbar"
	"vdfmint/operations"
)

// BenchCommand handles the bench subcommand.
func BenchCommand(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)

	var (
		duration = fs.Duration("duration", 5*time.Second, "how long to run each sample")
		samples  = fs.Int("samples", 3, "number of samples to take")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s bench [--duration DURATION] [--samples COUNT]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nMeasure this machine's modular-squaring rate against the RSA-2048 modulus\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s bench --duration 10s --samples 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *samples < 1 {
		fs.Usage()
		return fmt.Errorf("--samples must be >= 1")
	}

	fmt.Printf("Benchmarking sequential squaring (duration=%v, samples=%d)...\n\n", *duration, *samples)

	result, err := operations.Bench(operations.BenchOptions{Duration: *duration, Samples: *samples})
	if err != nil {
		return err
	}

	for i, s := range result.Samples {
		fmt.Printf("sample %d: %d ops in %v (%.0f ops/sec)\n", i+1, s.Operations, s.Elapsed.Round(time.Millisecond), s.OpsPerSecond)
	}

	fmt.Printf("\naverage rate: %.0f squarings/sec\n\n", result.AvgOpsPerSecond)
	fmt.Printf("=== Time estimates ===\n")
	for _, e := range result.Estimates {
		fmt.Printf("%12d iterations: %s\n", e.Iterations, progressbar.FormatDuration(e.EstimatedTime))
	}

	return nil
}
