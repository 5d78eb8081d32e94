package ingest

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is the on-disk shape of a transcript
type Format string

const (
	FormatText   Format = "text"
	FormatHTML   Format = "html"
	FormatRecord Format = "record"
)

// Detect picks a format from the file extension, falling back to sniffing
// the content.
func Detect(path string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".md":
		return FormatText, nil
	case ".json":
		return FormatRecord, nil
	}

	nullCount := bytes.Count(data, []byte{0})
	if len(data) > 0 && float64(nullCount)/float64(len(data)) > 0.02 {
		return "", ErrUnsupportedFormat
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.Contains(bytes.ToLower(trimmed), []byte("<html")) {
		return FormatHTML, nil
	}
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatRecord, nil
	}
	return FormatText, nil
}
