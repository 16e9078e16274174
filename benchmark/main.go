// Package main provides a throughput benchmarking tool for batch scoring.
// It ranks synthetic candidate batches of several sizes across worker counts,
// running each combination multiple times, treating the first run as cold and
// averaging the rest as warm, and writes CSV output for performance analysis.
//
// Usage: go run ./benchmark [output-dir]
//
//	output-dir: Directory for the CSV results (defaults to /tmp)
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/projectparaiba/paraiba/core"
	"github.com/projectparaiba/paraiba/schema"
)

// BenchmarkResult holds the result of one batch size and worker count.
type BenchmarkResult struct {
	Candidates int
	Workers    int
	ColdTime   string
	WarmTime   string
	Throughput string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	OutputDir  string
	Runs       int
	BatchSizes []int
	Workers    []int
	Seed       uint64
}

func main() {
	outputDir := "/tmp"
	if len(os.Args) == 2 {
		outputDir = os.Args[1]
	} else if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [output-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		OutputDir:  outputDir,
		Runs:       5,
		BatchSizes: []int{1_000, 10_000, 100_000},
		Workers:    []int{1, 4, 14},
		Seed:       42,
	}

	results := runBenchmarks(config)

	if err := saveResults(config, results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// syntheticCandidates builds a reproducible batch with roughly one invalid
// candidate per hundred.
func syntheticCandidates(n int, seed uint64) []schema.Candidate {
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	out := make([]schema.Candidate, n)
	for i := range out {
		attrs := map[string]any{
			schema.FieldName:           "candidate-" + strconv.Itoa(i),
			schema.FieldGoogleRating:   1 + 4*rng.Float64(),
			schema.FieldGoogleReviews:  rng.IntN(5000),
			schema.FieldRedditMentions: rng.IntN(80),
			schema.FieldAverageUpvotes: 300 * rng.Float64(),
			schema.FieldSentimentScore: rng.Float64(),
		}
		if rng.IntN(100) == 0 {
			delete(attrs, schema.FieldGoogleReviews)
		}
		out[i] = schema.NewCandidate(attrs)
	}
	return out
}

// runBenchmarks executes every batch size and worker combination.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult
	weights := schema.DefaultWeightConfig()

	fmt.Printf("Starting benchmark: %d batch sizes, %d worker counts, %d runs each\n",
		len(config.BatchSizes), len(config.Workers), config.Runs)

	for _, size := range config.BatchSizes {
		candidates := syntheticCandidates(size, config.Seed)
		for _, workers := range config.Workers {
			results = append(results, runBenchmark(config, candidates, weights, workers))
		}
	}
	return results
}

// runBenchmark ranks one batch repeatedly and reports cold and warm timings.
func runBenchmark(config BenchmarkConfig, candidates []schema.Candidate, weights schema.WeightConfig, workers int) BenchmarkResult {
	fmt.Printf("Ranking %d candidates with %d workers\n", len(candidates), workers)

	times := make([]float64, 0, config.Runs)
	for range config.Runs {
		start := time.Now()
		_ = core.ScoreBatch(context.Background(), candidates, weights, workers)
		times = append(times, time.Since(start).Seconds())
	}

	result := BenchmarkResult{
		Candidates: len(candidates),
		Workers:    workers,
		ColdTime:   fmt.Sprintf("%.4fs", times[0]),
		WarmTime:   "N/A",
		Throughput: "N/A",
	}
	if warm := times[1:]; len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		avg := sum / float64(len(warm))
		result.WarmTime = fmt.Sprintf("%.4fs", avg)
		result.Throughput = fmt.Sprintf("%.0f/s", float64(len(candidates))/avg)
	}
	return result
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(config BenchmarkConfig, results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(config.OutputDir, fmt.Sprintf("paraiba_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"candidates", "workers", "cold_time", "warm_avg", "throughput"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, r := range results {
		record := []string{strconv.Itoa(r.Candidates), strconv.Itoa(r.Workers), r.ColdTime, r.WarmTime, r.Throughput}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, r := range results {
		fmt.Printf("  %7d candidates, %2d workers: Cold: %s, Warm: %s, Throughput: %s\n",
			r.Candidates, r.Workers, r.ColdTime, r.WarmTime, r.Throughput)
	}
}
