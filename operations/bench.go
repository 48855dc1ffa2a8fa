package operations

import (
	"math/big"
	"time"

	"vdfmint/internal/bigmath"
	"vdfmint/internal/progressbar"
	"vdfmint/internal/rsa2048"
)

// BenchOptions are the parameters a bench invocation needs.
type BenchOptions struct {
	Duration time.Duration
	Samples  int
}

// BenchSample is a single timed batch of modular squarings.
type BenchSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// TimeEstimate is the projected wall-clock time for a given iteration count
// at the benchmark's measured rate.
type TimeEstimate struct {
	Iterations    uint64
	EstimatedTime time.Duration
}

// BenchResult is the outcome of a bench invocation.
type BenchResult struct {
	Samples         []BenchSample
	TotalOps        uint64
	TotalTime       time.Duration
	AvgOpsPerSecond float64
	Estimates       []TimeEstimate
}

// Bench measures this machine's sequential-squaring rate against the fixed
// RSA-2048 modulus, the same way the teacher CLI's RunBenchmark profiles
// its time-lock modulus, and projects how long a few representative
// iteration counts would take to evaluate.
func Bench(opts BenchOptions) (*BenchResult, error) {
	n := rsa2048.N()

	var samples []BenchSample
	var totalOps uint64
	var totalTime time.Duration

	for i := 0; i < opts.Samples; i++ {
		ops, elapsed := benchSquaring(n, opts.Duration)
		opsPerSecond := float64(ops) / elapsed.Seconds()

		samples = append(samples, BenchSample{Operations: ops, Elapsed: elapsed, OpsPerSecond: opsPerSecond})
		totalOps += ops
		totalTime += elapsed
	}

	avg := float64(totalOps) / totalTime.Seconds()

	iterationCounts := []uint64{1_000_000, 50_000_000, 1_000_000_000}
	estimates := make([]TimeEstimate, 0, len(iterationCounts))
	for _, n := range iterationCounts {
		estimates = append(estimates, TimeEstimate{
			Iterations:    n,
			EstimatedTime: progressbar.EstimateDuration(n, avg),
		})
	}

	return &BenchResult{
		Samples:         samples,
		TotalOps:        totalOps,
		TotalTime:       totalTime,
		AvgOpsPerSecond: avg,
		Estimates:       estimates,
	}, nil
}

// benchSquaring performs modular squarings against n for the given
// duration, batching time.Now() calls to keep their overhead out of the
// measurement.
func benchSquaring(n *big.Int, duration time.Duration) (uint64, time.Duration) {
	x := big.NewInt(12345)
	x.Mod(x, n)

	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		for i := 0; i < 1000; i++ {
			x = bigmath.SqrMod(x, n)
			operations++
		}
	}

	return operations, time.Since(start)
}
