package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/llm"
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"gopkg.in/yaml.v3"
)

// Renderer writes extraction results as JSON or YAML
type Renderer struct {
	format      string
	includeTags bool
}

// NewRenderer creates a renderer for the configured output
func NewRenderer(cfg model.OutputConfig) *Renderer {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "json"
	}
	return &Renderer{format: format, includeTags: cfg.IncludeTags}
}

// Extension returns the file extension for the renderer's format
func (r *Renderer) Extension() string {
	if r.format == "yaml" {
		return ".yaml"
	}
	return ".json"
}

// Render writes res to w
func (r *Renderer) Render(w io.Writer, res *Result) error {
	out := r.prepare(res)

	switch r.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
	return nil
}

// RenderFile writes res to path, creating parent directories
func (r *Renderer) RenderFile(res *Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := r.Render(f, res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// RenderNarrativeFile writes an enabled narrative as markdown. Nothing is
// written for a disabled or missing narrative.
func (r *Renderer) RenderNarrativeFile(n *model.Narrative, path string) (bool, error) {
	md := llm.RenderMarkdown(n)
	if md == "" {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return false, fmt.Errorf("write narrative: %w", err)
	}
	return true, nil
}

// RenderSummary prints a one-screen overview of res
func (r *Renderer) RenderSummary(w io.Writer, res *Result) {
	t := res.Transcript
	status := string(t.Format)
	if res.Cached {
		status += ", cached"
	}
	_, _ = fmt.Fprintf(w, "Transcript: %s (%s)\n", t.ID, status)

	facts := llm.Facts(res.Graph)
	if len(facts) == 0 {
		_, _ = fmt.Fprintln(w, "  (nothing extracted)")
	}
	for _, f := range facts {
		_, _ = fmt.Fprintf(w, "  %s\n", f)
	}

	if tags := tagCounts(res.Graph); tags != "" {
		_, _ = fmt.Fprintf(w, "  Tags: %s\n", tags)
	}
	if n := res.Narrative; n != nil {
		for _, warning := range n.Warnings {
			_, _ = fmt.Fprintf(w, "  ! %s\n", warning)
		}
	}
}

// prepare returns the value to encode. Tags are stripped on a copy so cached
// graphs are never modified.
func (r *Renderer) prepare(res *Result) *Result {
	if r.includeTags || res.Graph == nil {
		return res
	}
	out := *res
	g := *res.Graph
	g.TranscriptTags = []model.TranscriptTag{}
	out.Graph = &g
	return &out
}

func tagCounts(g *model.KnowledgeGraph) string {
	var parts []string
	for _, c := range model.AllTagCategories {
		if n := len(g.TagsOf(c)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c))
		}
	}
	return strings.Join(parts, ", ")
}
