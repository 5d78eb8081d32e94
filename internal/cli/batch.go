package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/logging"
	"github.com/Gleipnir-Technology/nidus-extract/internal/pipeline"
	"github.com/Gleipnir-Technology/nidus-extract/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchFlags   extractionFlags
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	perSecond    float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Extract many transcripts listed in a file in parallel",
	Long: `Batch extracts every transcript listed in a file:
- One transcript path per line; blank lines and # comments are skipped
- Relative paths are resolved against the list file's directory
- Transcripts are processed concurrently with a configurable worker count
- Each graph is written to its own file in the output directory

Example:
  nidus-extract batch week-32.txt
  nidus-extract batch week-32.txt --concurrency 8 --output-dir ./graphs
  nidus-extract batch week-32.txt --rate 2 --llm ollama --llm-model llama3.1`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchFlags.register(batchCmd)
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./nidus-graphs", "output directory for graphs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&perSecond, "rate", 0, "max transcripts started per second (default from config, 0 = unlimited)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]

	cfg, err := resolveConfig(cmd, &batchFlags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if cmd.Flags().Changed("rate") {
		cfg.RateLimiting.TranscriptsPerSecond = perSecond
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	limiter := worker.NewLimiter(cfg.RateLimiting.TranscriptsPerSecond, cfg.RateLimiting.BurstSize)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, limiter)

	stderr := cmd.ErrOrStderr()
	printBatchBanner(stderr, batchBanner{
		listFile:  listFile,
		workers:   cfg.Concurrency.Workers,
		outputDir: outputDir,
		timeout:   batchTimeout,
		perSecond: cfg.RateLimiting.TranscriptsPerSecond,
		limiter:   limiter,
		narrator:  p.NarrativeProvider(),
		model:     cfg.LLM.Model,
	})

	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output)
	successCount := 0
	failureCount := 0
	used := make(map[string]int)

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		name := uniqueName(sanitizeFilename(result.Result.Transcript.ID), used)
		graphPath := filepath.Join(outputDir, name+renderer.Extension())
		if err := renderer.RenderFile(result.Result, graphPath); err != nil {
			failureCount++
			fmt.Fprintf(stderr, "✗ %s: failed to write graph: %v\n", result.Path, err)
			continue
		}
		if _, err := renderer.RenderNarrativeFile(result.Result.Narrative, filepath.Join(outputDir, name+".md")); err != nil {
			fmt.Fprintf(stderr, "! %s: %v\n", result.Path, err)
		}

		successCount++
		fmt.Fprintf(stderr, "✓ %s (%d tags)\n", name, len(result.Result.Graph.TranscriptTags))
		if cfg.Output.Verbose {
			renderer.RenderSummary(stderr, result.Result)
		}
	}

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Batch Complete\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Total:     %d transcripts\n", len(results))
	fmt.Fprintf(stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failureCount, len(results))
	}
	return nil
}

type batchBanner struct {
	listFile  string
	workers   int
	outputDir string
	timeout   time.Duration
	perSecond float64
	limiter   *worker.Limiter
	narrator  string
	model     string
}

func printBatchBanner(w io.Writer, b batchBanner) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  Nidus Batch Extraction\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Input file:   %s\n", b.listFile)
	fmt.Fprintf(w, "  Workers:      %d\n", b.workers)
	fmt.Fprintf(w, "  Output dir:   %s\n", b.outputDir)
	fmt.Fprintf(w, "  Timeout:      %v\n", b.timeout)
	if b.limiter.Unlimited() {
		fmt.Fprintf(w, "  Rate:         unlimited\n")
	} else {
		fmt.Fprintf(w, "  Rate:         %g transcripts/s\n", b.perSecond)
	}
	if b.narrator != "" {
		fmt.Fprintf(w, "  Narrative:    %s/%s\n", b.narrator, b.model)
	} else {
		fmt.Fprintf(w, "  Narrative:    off\n")
	}
	fmt.Fprintf(w, "\n")
}

var filenameReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "-",
)

// sanitizeFilename makes a transcript ID safe to use as a file name
func sanitizeFilename(s string) string {
	s = filenameReplacer.Replace(strings.TrimSpace(s))
	s = strings.Trim(s, ".")
	if s == "" {
		s = "transcript"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// uniqueName suffixes repeated names so two transcripts never share an output file
func uniqueName(name string, used map[string]int) string {
	n := used[name]
	used[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s-%d", name, n+1)
}
