package dhash_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Operations int                `json:"operations"`
	NsPerOp    float64            `json:"ns_per_op"`
	Metrics    map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// heapAllocMB returns the live heap size in megabytes
func heapAllocMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / (1024 * 1024)
}

// saveBenchmarkResult appends a benchmark result to benchmark_history/<resultsFile>
// in the repository root. Set DHASH_BENCH_HISTORY=1 to enable it.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	if os.Getenv("DHASH_BENCH_HISTORY") == "" {
		return nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// bench/ sits one level below the repository root
	benchmarkDir := filepath.Join(filepath.Dir(currentDir), "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existingSummary BenchmarkSummary
		if err := json.Unmarshal(existingData, &existingSummary); err == nil {
			summary.Results = append(existingSummary.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(latestFile, jsonData, 0o644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
