// Package ingest reads field-report transcripts from plain text, HTML exports
// and JSON sync records.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxBytes caps how much of a transcript file is read
const DefaultMaxBytes = 4 * 1024 * 1024

var (
	// ErrEmptyTranscript is returned when a source holds no transcript text
	ErrEmptyTranscript = errors.New("empty transcript")
	// ErrUnsupportedFormat is returned for binary or unknown inputs
	ErrUnsupportedFormat = errors.New("unsupported transcript format")
)

// Transcript is one field report ready for extraction
type Transcript struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Source string `json:"source" yaml:"source"`
	Format Format `json:"format" yaml:"format"`
}

// ReadFile reads and parses the transcript at path
func ReadFile(ctx context.Context, path string) (*Transcript, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := readFileLimited(path, DefaultMaxBytes)
	if err != nil {
		return nil, err
	}
	return Parse(path, raw)
}

// Parse detects the format of raw and extracts its transcript. path is only
// used for detection and as the transcript's source and default ID.
func Parse(path string, raw []byte) (*Transcript, error) {
	format, err := Detect(path, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t := &Transcript{
		ID:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Source: path,
		Format: format,
	}
	switch format {
	case FormatText:
		t.Text = parseText(raw)
	case FormatHTML:
		t.Text, err = parseHTML(raw)
	case FormatRecord:
		err = parseRecord(raw, t)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if strings.TrimSpace(t.Text) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTranscript)
	}
	return t, nil
}

func readFileLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	lr := &io.LimitedReader{R: f, N: limit + 1}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("transcript %s exceeds %d bytes", path, limit)
	}
	return b, nil
}
