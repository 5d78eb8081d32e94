package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/ingest"
	"github.com/Gleipnir-Technology/nidus-extract/internal/logging"
	"github.com/Gleipnir-Technology/nidus-extract/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	extractFlags   extractionFlags
	extractOut     string
	extractSummary bool
	narrativeOut   string
	extractTimeout time.Duration
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <transcript|->",
	Short: "Extract the knowledge graph from one transcript",
	Long: `Extract reads one field-report transcript (plain text, an HTML export or a
JSON record) and prints its knowledge graph.

Use "-" to read the transcript from standard input.

Example:
  nidus-extract extract report.txt
  nidus-extract extract report.html --format yaml --out graph.yaml
  echo "Pool is green. No fish. third instar." | nidus-extract extract -
  nidus-extract extract report.txt --llm openai --narrative note.md`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractFlags.register(extractCmd)
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "write the graph to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractSummary, "summary", false, "print a one-screen summary to stderr")
	extractCmd.Flags().StringVar(&narrativeOut, "narrative", "", "write the narrative as markdown to this file")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", time.Minute, "overall timeout")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, &extractFlags)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	ctx, cancel := context.WithTimeout(cmd.Context(), extractTimeout)
	defer cancel()

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	var result *pipeline.Result
	if args[0] == "-" {
		if stdinIsTerminal() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Reading transcript from stdin (Ctrl-D to finish)")
		}
		t, err := readStdin(cmd.InOrStdin())
		if err != nil {
			return err
		}
		result, err = p.ProcessTranscript(ctx, t)
		if err != nil {
			return fmt.Errorf("extract failed: %w", err)
		}
	} else {
		result, err = p.Process(ctx, args[0])
		if err != nil {
			return fmt.Errorf("extract failed: %w", err)
		}
	}

	renderer := pipeline.NewRenderer(cfg.Output)
	if extractOut != "" {
		if err := renderer.RenderFile(result, extractOut); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", extractOut)
		}
	} else if err := renderer.Render(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if narrativeOut != "" {
		wrote, err := renderer.RenderNarrativeFile(result.Narrative, narrativeOut)
		if err != nil {
			return err
		}
		if !wrote {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no narrative was generated; %s not written\n", narrativeOut)
		}
	}

	if extractSummary || cfg.Output.Verbose {
		renderer.RenderSummary(cmd.ErrOrStderr(), result)
	}
	return nil
}

func readStdin(r io.Reader) (*ingest.Transcript, error) {
	raw, err := io.ReadAll(io.LimitReader(r, ingest.DefaultMaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(raw) > ingest.DefaultMaxBytes {
		return nil, fmt.Errorf("stdin: transcript exceeds %d bytes", ingest.DefaultMaxBytes)
	}
	return ingest.Parse("stdin", raw)
}

// stdinIsTerminal reports whether "-" would wait on an interactive shell
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
