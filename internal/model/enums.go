package model

import "strings"

// Genus is the mosquito genus identified in a report
type Genus string

const (
	GenusAedes  Genus = "aedes"
	GenusCulex  Genus = "culex"
	GenusQuinks Genus = "quinks" // Field shorthand for Culex quinquefasciatus, reported as its own genus
)

var genusByName = map[string]Genus{
	"aedes":  GenusAedes,
	"culex":  GenusCulex,
	"quinks": GenusQuinks,
}

// ParseGenus looks up a genus by its spoken name
func ParseGenus(s string) (Genus, bool) {
	g, ok := genusByName[strings.ToLower(s)]
	return g, ok
}

// Species is the mosquito species identified in a report
type Species string

const (
	SpeciesAegypti          Species = "aegypti"
	SpeciesAlbopictus       Species = "albopictus"
	SpeciesPipiens          Species = "pipiens"
	SpeciesQuinquefasciatus Species = "quinquefasciatus"
)

var speciesByName = map[string]Species{
	"aegypti":          SpeciesAegypti,
	"albopictus":       SpeciesAlbopictus,
	"pipiens":          SpeciesPipiens,
	"quinquefasciatus": SpeciesQuinquefasciatus,
}

// ParseSpecies looks up a species by its spoken name
func ParseSpecies(s string) (Species, bool) {
	sp, ok := speciesByName[strings.ToLower(s)]
	return sp, ok
}

// LifeStage is the most developed larval stage observed
type LifeStage string

const (
	StageFirstInstar  LifeStage = "first_instar"
	StageSecondInstar LifeStage = "second_instar"
	StageThirdInstar  LifeStage = "third_instar"
	StageFourthInstar LifeStage = "fourth_instar"
)

// LifeStageFromInt maps a stage number (1-4) to a LifeStage
func LifeStageFromInt(n int) (LifeStage, bool) {
	switch n {
	case 1:
		return StageFirstInstar, true
	case 2:
		return StageSecondInstar, true
	case 3:
		return StageThirdInstar, true
	case 4:
		return StageFourthInstar, true
	default:
		return "", false
	}
}

// LifeStageFromInstar maps an ordinal instar ("third instar") to a LifeStage.
// Only the first three instars are spoken this way in the field.
func LifeStageFromInstar(n int) (LifeStage, bool) {
	if n < 1 || n > 3 {
		return "", false
	}
	return LifeStageFromInt(n)
}

// HighestLifeStage is the stage recorded when every stage is reported present
const HighestLifeStage = 4

// BreedingConditions describes the state of the water at a breeding site
type BreedingConditions string

const (
	ConditionUnmaintained BreedingConditions = "unmaintained"
	ConditionPoolGreen    BreedingConditions = "pool_green"
	ConditionPoolMurky    BreedingConditions = "pool_murky"
	ConditionPoolClear    BreedingConditions = "pool_clear"
	ConditionStagnant     BreedingConditions = "stagnant"
	ConditionDry          BreedingConditions = "dry"
	ConditionFlowing      BreedingConditions = "flowing"
	ConditionMaintained   BreedingConditions = "maintained"
)

// AllBreedingConditions lists every condition in match priority order.
// Multi-word phrases come first so "not maintained" wins over "maintained".
var AllBreedingConditions = []BreedingConditions{
	ConditionUnmaintained,
	ConditionPoolGreen,
	ConditionPoolMurky,
	ConditionPoolClear,
	ConditionStagnant,
	ConditionDry,
	ConditionFlowing,
	ConditionMaintained,
}

var conditionDescriptions = map[BreedingConditions]string{
	ConditionUnmaintained: "not maintained",
	ConditionPoolGreen:    "green",
	ConditionPoolMurky:    "murky",
	ConditionPoolClear:    "clear",
	ConditionStagnant:     "stagnant",
	ConditionDry:          "dry",
	ConditionFlowing:      "flowing",
	ConditionMaintained:   "maintained",
}

// Description returns the spoken phrase for the condition
func (c BreedingConditions) Description() string {
	return conditionDescriptions[c]
}

// SourceType classifies the water-holding source
type SourceType string

const (
	SourcePond      SourceType = "pond"
	SourceDitch     SourceType = "ditch"
	SourceContainer SourceType = "container"
	SourceFountain  SourceType = "fountain"
	SourceBirdbath  SourceType = "birdbath"
	SourceTire      SourceType = "tire"
	SourceBucket    SourceType = "bucket"
)

var sourceTypeByName = map[string]SourceType{
	"pond":      SourcePond,
	"ditch":     SourceDitch,
	"container": SourceContainer,
	"fountain":  SourceFountain,
	"birdbath":  SourceBirdbath,
	"tire":      SourceTire,
	"bucket":    SourceBucket,
}

// ParseSourceType looks up a source type by its spoken name
func ParseSourceType(s string) (SourceType, bool) {
	st, ok := sourceTypeByName[strings.ToLower(s)]
	return st, ok
}

// Treatment is the control product or method applied to breeding
type Treatment string

const (
	TreatmentGeneral   Treatment = "general"
	TreatmentLarvicide Treatment = "larvicide"
	TreatmentBti       Treatment = "bti"
	TreatmentOil       Treatment = "oil"
)

// SourceElimination records how a source was removed
type SourceElimination string

const (
	EliminationDumped  SourceElimination = "dumped"
	EliminationDrained SourceElimination = "drained"
	EliminationRemoved SourceElimination = "removed"
)

// ProductionCapacity estimates how many mosquitoes a source can produce
type ProductionCapacity string

const (
	ProductionLow    ProductionCapacity = "low"
	ProductionMedium ProductionCapacity = "medium"
	ProductionHigh   ProductionCapacity = "high"
)

// ReportType is the Fieldseeker record the transcript should become
type ReportType string

const (
	ReportInspection     ReportType = "inspection"
	ReportMosquitoSource ReportType = "mosquito_source"
)

// UnitLength is a unit of linear measurement
type UnitLength string

const (
	UnitFeet   UnitLength = "feet"
	UnitInches UnitLength = "inches"
	UnitMeters UnitLength = "meters"
)

var unitByWord = map[string]UnitLength{
	"feet":   UnitFeet,
	"foot":   UnitFeet,
	"ft":     UnitFeet,
	"inches": UnitInches,
	"inch":   UnitInches,
	"meters": UnitMeters,
	"meter":  UnitMeters,
	"metres": UnitMeters,
	"metre":  UnitMeters,
}

// ParseUnitLength looks up a unit by a spoken word
func ParseUnitLength(s string) (UnitLength, bool) {
	u, ok := unitByWord[strings.ToLower(s)]
	return u, ok
}

// DimensionKind labels which axis of a volume a measurement belongs to
type DimensionKind string

const (
	DimensionDepth  DimensionKind = "depth"
	DimensionLength DimensionKind = "length"
	DimensionWidth  DimensionKind = "width"
)

var dimensionByLabel = map[string]DimensionKind{
	"depth":  DimensionDepth,
	"deep":   DimensionDepth,
	"length": DimensionLength,
	"long":   DimensionLength,
	"width":  DimensionWidth,
	"wide":   DimensionWidth,
}

// ParseDimensionLabel looks up a dimension by its label word ("deep", "wide", ...)
func ParseDimensionLabel(s string) (DimensionKind, bool) {
	d, ok := dimensionByLabel[strings.ToLower(s)]
	return d, ok
}

// TagCategory is the highlight category of a transcript tag
type TagCategory string

const (
	TagSource      TagCategory = "source"
	TagMeasurement TagCategory = "measurement"
	TagAction      TagCategory = "action"
)

// AllTagCategories lists the tag categories in display order
var AllTagCategories = []TagCategory{TagSource, TagMeasurement, TagAction}
