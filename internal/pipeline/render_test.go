package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gleipnir-Technology/nidus-extract/internal/extract"
	"github.com/Gleipnir-Technology/nidus-extract/internal/ingest"
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *Result {
	return &Result{
		Transcript: &ingest.Transcript{ID: "site-17", Text: report, Source: "site-17.txt", Format: ingest.FormatText},
		Graph:      extract.NewRuleExtractor().ExtractKnowledge(report),
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(model.OutputConfig{Format: "json", IncludeTags: true}).Render(&buf, sampleResult()))

	var decoded Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assertReportGraph(t, decoded.Graph)
	assert.NotEmpty(t, decoded.Graph.TranscriptTags)
	assert.Equal(t, "site-17", decoded.Transcript.ID)
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(model.OutputConfig{Format: "yaml", IncludeTags: true})
	require.NoError(t, r.Render(&buf, sampleResult()))
	assert.Equal(t, ".yaml", r.Extension())
	assert.Contains(t, buf.String(), "report_type: mosquito_source")

	var decoded Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assertReportGraph(t, decoded.Graph)
}

func TestRenderer_StripsTagsOnCopy(t *testing.T) {
	res := sampleResult()
	tags := len(res.Graph.TranscriptTags)
	require.NotZero(t, tags)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(model.OutputConfig{Format: "json"}).Render(&buf, res))
	assert.Contains(t, buf.String(), `"transcript_tags": []`)
	assert.Len(t, res.Graph.TranscriptTags, tags)
}

func TestRenderer_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, NewRenderer(model.OutputConfig{Format: "xml"}).Render(&buf, sampleResult()))
}

func TestRenderer_RenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "site-17.json")
	require.NoError(t, NewRenderer(model.OutputConfig{}).RenderFile(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"larvae_quantity": 12`)
}

func TestRenderer_RenderNarrativeFile(t *testing.T) {
	r := NewRenderer(model.OutputConfig{})
	path := filepath.Join(t.TempDir(), "n.md")

	wrote, err := r.RenderNarrativeFile(nil, path)
	require.NoError(t, err)
	assert.False(t, wrote)

	wrote, err = r.RenderNarrativeFile(&model.Narrative{Enabled: true, Provider: "openai", Text: "Green pool."}, path)
	require.NoError(t, err)
	assert.True(t, wrote)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Green pool.")
}

func TestRenderer_RenderSummary(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	res.Cached = true
	NewRenderer(model.OutputConfig{}).RenderSummary(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "Transcript: site-17 (text, cached)")
	assert.Contains(t, out, "Larvae: 12")
	assert.Contains(t, out, "Tags: ")

	buf.Reset()
	empty := &Result{Transcript: &ingest.Transcript{ID: "e", Format: ingest.FormatText}, Graph: model.NewKnowledgeGraph()}
	NewRenderer(model.OutputConfig{}).RenderSummary(&buf, empty)
	assert.Contains(t, buf.String(), "(nothing extracted)")
}
