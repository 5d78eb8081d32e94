package model

// TextRange is a half-open byte interval [Start, End) into the original transcript
type TextRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of bytes covered by the range
func (r TextRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies entirely within r
func (r TextRange) Contains(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// KnowledgeGraph is everything inferred from a single transcript.
// Every field in every sub-graph is independently nullable.
type KnowledgeGraph struct {
	Breeding       BreedingGraph          `json:"breeding" yaml:"breeding"`
	Source         SourceGraph            `json:"source" yaml:"source"`
	Facilitator    FacilitatorGraph       `json:"facilitator" yaml:"facilitator"`
	RootCause      RootCauseGraph         `json:"root_cause" yaml:"root_cause"`
	Driver         DriverGraph            `json:"driver" yaml:"driver"`
	Fieldseeker    FieldseekerReportGraph `json:"fieldseeker" yaml:"fieldseeker"`
	TranscriptTags []TranscriptTag        `json:"transcript_tags" yaml:"transcript_tags"` // Detection order, not range order
}

// NewKnowledgeGraph returns an empty graph
func NewKnowledgeGraph() *KnowledgeGraph {
	return &KnowledgeGraph{
		TranscriptTags: []TranscriptTag{},
	}
}

// BreedingGraph describes the mosquito breeding observed at the source
type BreedingGraph struct {
	Genus              *Genus              `json:"genus,omitempty" yaml:"genus,omitempty"`
	Species            *Species            `json:"species,omitempty" yaml:"species,omitempty"`
	Stage              *LifeStage          `json:"stage,omitempty" yaml:"stage,omitempty"`
	Conditions         *BreedingConditions `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	IsBreedingExplicit *bool               `json:"is_breeding_explicit,omitempty" yaml:"is_breeding_explicit,omitempty"`
	EggQuantity        *int                `json:"egg_quantity,omitempty" yaml:"egg_quantity,omitempty"`
	LarvaeQuantity     *int                `json:"larvae_quantity,omitempty" yaml:"larvae_quantity,omitempty"`
	PupaeQuantity      *int                `json:"pupae_quantity,omitempty" yaml:"pupae_quantity,omitempty"`
	HasFish            *bool               `json:"has_fish,omitempty" yaml:"has_fish,omitempty"`
	Treatment          *Treatment          `json:"treatment,omitempty" yaml:"treatment,omitempty"`
}

// SourceGraph describes the water source itself
type SourceGraph struct {
	Type                *SourceType         `json:"type,omitempty" yaml:"type,omitempty"`
	Volume              *Volume             `json:"volume,omitempty" yaml:"volume,omitempty"`
	HasFish             *bool               `json:"has_fish,omitempty" yaml:"has_fish,omitempty"`
	ProductionCapacity  *ProductionCapacity `json:"production_capacity,omitempty" yaml:"production_capacity,omitempty"`
	SourceElimination   *SourceElimination  `json:"source_elimination,omitempty" yaml:"source_elimination,omitempty"`
	PreemptiveTreatment *bool               `json:"preemptive_treatment,omitempty" yaml:"preemptive_treatment,omitempty"`
}

// FacilitatorGraph describes what lets water reach or stay at the source
type FacilitatorGraph struct {
	Blocking        *string `json:"blocking,omitempty" yaml:"blocking,omitempty"`
	PathToRootCause *string `json:"path_to_root_cause,omitempty" yaml:"path_to_root_cause,omitempty"`
	PathToSource    *string `json:"path_to_source,omitempty" yaml:"path_to_source,omitempty"`
}

// RootCauseGraph describes the underlying cause and its remedy
type RootCauseGraph struct {
	Fix            *string `json:"fix,omitempty" yaml:"fix,omitempty"`
	LegalAbatement *bool   `json:"legal_abatement,omitempty" yaml:"legal_abatement,omitempty"`
}

// DriverGraph describes the people responsible for the condition
type DriverGraph struct {
	Contact              *bool `json:"contact,omitempty" yaml:"contact,omitempty"`
	BehaviorModification *bool `json:"behavior_modification,omitempty" yaml:"behavior_modification,omitempty"`
}

// FieldseekerReportGraph holds fields destined for the Fieldseeker record
type FieldseekerReportGraph struct {
	ReportType *ReportType `json:"report_type,omitempty" yaml:"report_type,omitempty"`
	DipCount   *int        `json:"dip_count,omitempty" yaml:"dip_count,omitempty"`
}

// Measurement is a value with a unit of length
type Measurement struct {
	Value float64    `json:"value" yaml:"value"`
	Unit  UnitLength `json:"unit" yaml:"unit"`
}

// Volume is the three dimensions of a water source
type Volume struct {
	Depth  Measurement `json:"depth" yaml:"depth"`
	Length Measurement `json:"length" yaml:"length"`
	Width  Measurement `json:"width" yaml:"width"`
}

// TranscriptTag marks a span of the transcript that justified an inferred value
type TranscriptTag struct {
	Range TextRange   `json:"range" yaml:"range"`
	Type  TagCategory `json:"type" yaml:"type"`
}

// AddTag appends a tag; duplicates are kept
func (g *KnowledgeGraph) AddTag(r TextRange, category TagCategory) {
	g.TranscriptTags = append(g.TranscriptTags, TranscriptTag{Range: r, Type: category})
}

// TagsOf returns the tags of one category in detection order
func (g *KnowledgeGraph) TagsOf(category TagCategory) []TranscriptTag {
	var tags []TranscriptTag
	for _, t := range g.TranscriptTags {
		if t.Type == category {
			tags = append(tags, t)
		}
	}
	return tags
}
