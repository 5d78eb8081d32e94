package model

import "time"

// Narrative is an optional free-text note written from a KnowledgeGraph.
// It is derived output only and never feeds back into the graph.
type Narrative struct {
	Enabled     bool      `json:"enabled" yaml:"enabled"`
	Provider    string    `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model       string    `json:"model,omitempty" yaml:"model,omitempty"`
	StrictFacts bool      `json:"strict_facts" yaml:"strict_facts"`
	Text        string    `json:"text,omitempty" yaml:"text,omitempty"`
	Warnings    []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
}
