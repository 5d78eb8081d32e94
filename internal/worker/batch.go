package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/pipeline"
)

// Processor extracts the knowledge graph for one transcript file
type Processor interface {
	Process(ctx context.Context, path string) (*pipeline.Result, error)
}

// ExtractJob represents one transcript extraction
type ExtractJob struct {
	Path      string
	Processor Processor
	Limiter   *Limiter
}

// Execute waits for the limiter and runs the extraction
func (j *ExtractJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx); err != nil {
		return &ExtractResult{Path: j.Path, Error: fmt.Errorf("rate limit: %w", err)}
	}

	result, err := j.Processor.Process(ctx, j.Path)
	if err != nil {
		return &ExtractResult{Path: j.Path, Error: err}
	}
	return &ExtractResult{Path: j.Path, Result: result}
}

// ExtractResult represents the result of an extraction job
type ExtractResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the extraction
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts many transcripts concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. limiter may be nil.
func NewBatchProcessor(processor Processor, concurrency int, limiter *Limiter) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessPaths extracts every path and returns results in input order
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ExtractResult {
	if len(paths) == 0 {
		return []*ExtractResult{}
	}

	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = &ExtractJob{
			Path:      path,
			Processor: b.processor,
			Limiter:   b.limiter,
		}
	}

	results := NewPool(b.concurrency).Run(ctx, jobs)

	out := make([]*ExtractResult, len(results))
	for i, result := range results {
		out[i] = result.(*ExtractResult)
	}
	return out
}

// ProcessFile reads transcript paths from a list file and extracts them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*ExtractResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads transcript paths from a file, one per line.
// Relative paths are resolved against the list file's directory.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(listPath)
	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
