package extract

import (
	"errors"
	"fmt"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"github.com/Gleipnir-Technology/nidus-extract/internal/numeric"
	"go.uber.org/zap"
)

var (
	// ErrNotEnoughDimensions is returned when fewer than three measurements were found
	ErrNotEnoughDimensions = errors.New("not enough dimensions")
	// ErrUnableToSort is returned when measurements cannot be assigned to depth, length and width
	ErrUnableToSort = errors.New("unable to sort measurements into dimensions")
)

const (
	volumeDimensions = 3
	maxFillerWords   = 5
	connectiveReach  = 5
)

// unclaimedOrder is the order in which unlabelled measurements fill the
// remaining roles. Each role takes the last unclaimed measurement.
var unclaimedOrder = []model.DimensionKind{
	model.DimensionDepth,
	model.DimensionWidth,
	model.DimensionLength,
}

var dimensionFillers = map[string]struct{}{
	"at":        {},
	"be":        {},
	"dimension": {},
	"pool":      {},
	"size":      {},
}

var connectives = map[string]struct{}{
	",":   {},
	"and": {},
	"by":  {},
}

// ExtractedMeasurement is one number read from the transcript with whatever
// unit and dimension label followed it.
type ExtractedMeasurement struct {
	Dimension     *model.DimensionKind
	Unit          *model.UnitLength
	Value         float64
	WordsConsumed int
}

// markDimensions reads "N [unit] [label] by N [unit] [label] by N [unit] [label]"
// after the trigger and records it as the source volume. Nothing is written
// unless all three measurements are read and sorted.
func markDimensions(p *pass, g nlp.Gram) {
	off := 1 + skipFillers(g, 1)

	var (
		measurements []ExtractedMeasurement
		consumed     []nlp.Word
	)
	for i := 0; i < volumeDimensions; i++ {
		if i > 0 {
			next, words, ok := findConnective(g, off)
			if !ok {
				p.miss(g, "no connective between measurements")
				return
			}
			off = next
			consumed = append(consumed, words...)
		}
		m, ok := maybeExtractVolumeMeasurement(g, off)
		if !ok {
			p.miss(g, "no measurement where one was expected")
			return
		}
		for j := 0; j < m.WordsConsumed; j++ {
			consumed = append(consumed, g.At(off+j))
		}
		off += m.WordsConsumed
		measurements = append(measurements, m)
	}

	volume, err := volumeFromMeasurements(measurements)
	if err != nil {
		p.logger.Info("volume not extracted",
			zap.Int("offset", g.Offset()),
			zap.Error(err),
		)
		return
	}

	p.graph.Source.Volume = volume
	p.tag(g.At(0), model.TagMeasurement)
	for _, w := range consumed {
		p.tag(w, model.TagMeasurement)
	}
}

// skipFillers returns how many filler words start at offset
func skipFillers(g nlp.Gram, offset int) int {
	n := 0
	for n < maxFillerWords {
		if _, ok := dimensionFillers[g.At(offset+n).LemOrText()]; !ok {
			break
		}
		n++
	}
	return n
}

// findConnective searches forward from offset for a connective and returns
// the offset just past it and any connectives directly following it.
func findConnective(g nlp.Gram, offset int) (int, []nlp.Word, bool) {
	for i := 0; i < connectiveReach; i++ {
		w := g.At(offset + i)
		if w.IsEmpty() {
			return 0, nil, false
		}
		if _, ok := connectives[w.LemOrText()]; !ok {
			continue
		}
		words := []nlp.Word{w}
		next := offset + i + 1
		for {
			w = g.At(next)
			if _, ok := connectives[w.LemOrText()]; !ok || w.IsEmpty() {
				break
			}
			words = append(words, w)
			next++
		}
		return next, words, true
	}
	return 0, nil, false
}

// maybeExtractVolumeMeasurement reads a cardinal at offset, then an optional
// unit, then an optional dimension label.
func maybeExtractVolumeMeasurement(g nlp.Gram, offset int) (ExtractedMeasurement, bool) {
	n, ok := numeric.FromCardinal(g.At(offset).Text)
	if !ok {
		return ExtractedMeasurement{}, false
	}
	m := ExtractedMeasurement{Value: float64(n), WordsConsumed: 1}

	if u, ok := parseUnit(g.At(offset + m.WordsConsumed)); ok {
		m.Unit = &u
		m.WordsConsumed++
	}
	if d, ok := parseLabel(g.At(offset + m.WordsConsumed)); ok {
		m.Dimension = &d
		m.WordsConsumed++
	}
	return m, true
}

func parseUnit(w nlp.Word) (model.UnitLength, bool) {
	if w.IsEmpty() {
		return "", false
	}
	if u, ok := model.ParseUnitLength(w.Text); ok {
		return u, true
	}
	return model.ParseUnitLength(w.LemOrText())
}

func parseLabel(w nlp.Word) (model.DimensionKind, bool) {
	if w.IsEmpty() {
		return "", false
	}
	if d, ok := model.ParseDimensionLabel(w.Text); ok {
		return d, true
	}
	return model.ParseDimensionLabel(w.LemOrText())
}

// volumeFromMeasurements assigns exactly three measurements to depth, length
// and width. Labelled measurements claim their role directly; the rest fill
// the open roles in unclaimedOrder.
func volumeFromMeasurements(ms []ExtractedMeasurement) (*model.Volume, error) {
	if len(ms) < volumeDimensions {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughDimensions, len(ms))
	}
	if len(ms) > volumeDimensions {
		return nil, fmt.Errorf("%w: got %d measurements", ErrUnableToSort, len(ms))
	}

	unit := model.UnitFeet
	for _, m := range ms {
		if m.Unit != nil {
			unit = *m.Unit
			break
		}
	}

	roles := make(map[model.DimensionKind]ExtractedMeasurement, volumeDimensions)
	var unclaimed []ExtractedMeasurement
	for _, m := range ms {
		if m.Dimension != nil {
			roles[*m.Dimension] = m
			continue
		}
		unclaimed = append(unclaimed, m)
	}
	for _, kind := range unclaimedOrder {
		if _, ok := roles[kind]; ok || len(unclaimed) == 0 {
			continue
		}
		roles[kind] = unclaimed[len(unclaimed)-1]
		unclaimed = unclaimed[:len(unclaimed)-1]
	}
	if len(roles) != volumeDimensions || len(unclaimed) != 0 {
		return nil, fmt.Errorf("%w: %d roles filled, %d left over", ErrUnableToSort, len(roles), len(unclaimed))
	}

	measure := func(kind model.DimensionKind) model.Measurement {
		m := roles[kind]
		u := unit
		if m.Unit != nil {
			u = *m.Unit
		}
		return model.Measurement{Value: m.Value, Unit: u}
	}
	return &model.Volume{
		Depth:  measure(model.DimensionDepth),
		Length: measure(model.DimensionLength),
		Width:  measure(model.DimensionWidth),
	}, nil
}
