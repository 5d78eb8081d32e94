package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		data string
		want Format
	}{
		{"a.txt", "<html>", FormatText},
		{"a.MD", "x", FormatText},
		{"a.htm", "x", FormatHTML},
		{"a.json", "x", FormatRecord},
		{"noext", "  <HTML><body>pool</body></html>", FormatHTML},
		{"noext", `{"id":"1"}`, FormatRecord},
		{"noext", "pool is green", FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.data, func(t *testing.T) {
			got, err := Detect(tt.path, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Binary(t *testing.T) {
	_, err := Detect("blob", []byte{0, 0, 0, 'a'})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_Text(t *testing.T) {
	tr, err := Parse("notes/site-12.txt", []byte("  Pool is green.\r\nNo fish.\n"))
	require.NoError(t, err)
	assert.Equal(t, "site-12", tr.ID)
	assert.Equal(t, "Pool is green.\nNo fish.", tr.Text)
	assert.Equal(t, FormatText, tr.Format)
	assert.Equal(t, "notes/site-12.txt", tr.Source)
}

func TestParse_HTML(t *testing.T) {
	page := `<html><head><title>Export</title><style>p{}</style></head><body>
<p>Pool is   green</p><p>No fish.</p><script>var larvae = 3;</script>
<ul><li>third instar</li></ul></body></html>`

	tr, err := Parse("export.html", []byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Pool is green. No fish. third instar.", tr.Text)
}

func TestParse_Record(t *testing.T) {
	tr, err := Parse("r.json", []byte(`{"id":"note-7","transcript":"Counted 12 larvae"}`))
	require.NoError(t, err)
	assert.Equal(t, "note-7", tr.ID)
	assert.Equal(t, "Counted 12 larvae", tr.Text)

	_, err = Parse("r.json", []byte(`{"id":`))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("a.txt", []byte("   \n"))
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = Parse("r.json", []byte(`{"id":"x"}`))
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = Parse("a.html", []byte(`<html><script>x</script></html>`))
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visit.txt")
	require.NoError(t, os.WriteFile(path, []byte("no fish present"), 0o644))

	tr, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "visit", tr.ID)
	assert.Equal(t, "no fish present", tr.Text)

	_, err = ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
