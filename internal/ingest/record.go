package ingest

import (
	"encoding/json"
	"fmt"
)

// record is a transcript as exported by the field sync layer
type record struct {
	ID         string `json:"id"`
	Transcript string `json:"transcript"`
}

func parseRecord(raw []byte, t *Transcript) error {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if r.ID != "" {
		t.ID = r.ID
	}
	t.Text = r.Transcript
	return nil
}
