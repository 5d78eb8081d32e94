package extract

import (
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
)

// maybeMarkCondition matches the condition's phrase word by word against the
// surface text starting at offset. The graph is only touched on a full match.
func maybeMarkCondition(p *pass, g nlp.Gram, offset int, cond model.BreedingConditions) bool {
	phrase := strings.Fields(strings.ToLower(cond.Description()))
	if len(phrase) == 0 {
		return false
	}
	matched := make([]nlp.Word, 0, len(phrase))
	for i, want := range phrase {
		w := g.At(offset + i)
		if w.IsEmpty() || w.Text != want {
			return false
		}
		matched = append(matched, w)
	}

	p.graph.Breeding.Conditions = ptr(cond)
	for _, w := range matched {
		p.tag(w, model.TagSource)
	}
	return true
}

// markConditionWindow tries every condition at each offset in [from, to] and
// stops at the first hit.
func markConditionWindow(from, to int) matchFunc {
	return func(p *pass, g nlp.Gram) {
		for off := from; off <= to; off++ {
			for _, cond := range model.AllBreedingConditions {
				if maybeMarkCondition(p, g, off, cond) {
					return
				}
			}
		}
	}
}

// markConditionEndingHere handles a bare condition keyword by matching each
// phrase so that it ends on the trigger, letting "not maintained" beat
// "maintained".
func markConditionEndingHere(p *pass, g nlp.Gram) {
	for _, cond := range model.AllBreedingConditions {
		n := len(strings.Fields(cond.Description()))
		if maybeMarkCondition(p, g, 1-n, cond) {
			return
		}
	}
	p.miss(g, "condition keyword outside any known phrase")
}
