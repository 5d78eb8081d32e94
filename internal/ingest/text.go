package ingest

import "strings"

func parseText(raw []byte) string {
	return strings.TrimSpace(strings.ReplaceAll(string(raw), "\r\n", "\n"))
}
