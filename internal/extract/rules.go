package extract

import (
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/Gleipnir-Technology/nidus-extract/internal/nlp"
	"github.com/Gleipnir-Technology/nidus-extract/internal/numeric"
	"go.uber.org/zap"
)

type matchFunc func(p *pass, g nlp.Gram)

// rule binds a set of trigger words to a matcher
type rule struct {
	name     string
	triggers map[string]struct{}
	match    matchFunc
}

func on(name string, match matchFunc, triggers ...string) rule {
	set := make(map[string]struct{}, len(triggers))
	for _, t := range triggers {
		set[t] = struct{}{}
	}
	return rule{name: name, triggers: set, match: match}
}

// defaultRules returns the rule table in dispatch order
func defaultRules() []rule {
	return []rule{
		on("genus", markGenus, "aedes", "culex", "quinks"),
		on("species", markSpecies, "aegypti", "albopictus", "pipiens", "quinquefasciatus"),
		on("breeding", markBreeding, "breed", "breeding"),
		on("fish", markFish, "fish"),
		on("instar", markInstar, "instar"),
		on("dips", quantity(func(g *model.KnowledgeGraph, n int) { g.Fieldseeker.DipCount = &n }), "dip", "dips"),
		on("eggs", quantity(func(g *model.KnowledgeGraph, n int) { g.Breeding.EggQuantity = &n }), "egg"),
		on("larvae", quantity(func(g *model.KnowledgeGraph, n int) { g.Breeding.LarvaeQuantity = &n }), "larva", "larvae"),
		on("pupae", quantity(func(g *model.KnowledgeGraph, n int) { g.Breeding.PupaeQuantity = &n }), "pupa", "pupae", "tumbler"),
		on("stage", markStage, "stage"),
		on("source", reportType(model.ReportMosquitoSource), "source"),
		on("inspection", reportType(model.ReportInspection), "inspection"),
		on("pool", markPool, "pool"),
		on("dimension", markDimensions, "dimension"),
		on("condition", markConditionWindow(-5, 5), "condition"),
		on("condition-word", markConditionEndingHere, "green", "murky", "clear", "stagnant", "dry", "flowing", "maintain", "maintained"),
		on("source-type", markSourceType, "pond", "ditch", "container", "fountain", "birdbath", "tire", "bucket"),
		on("treatment", markTreatment, "treat", "larvicide", "bti", "oil"),
		on("elimination", markElimination, "dump", "drain", "remove"),
		on("preemptive", markPreemptive, "preemptive", "preventive", "prevention"),
		on("production", markProduction, "productive", "production"),
		on("blocking", markBlocking, "block", "clog"),
		on("path-to-source", markPath(func(g *model.KnowledgeGraph, v string) { g.Facilitator.PathToSource = &v }), "leak", "runoff"),
		on("path-to-root-cause", markPath(func(g *model.KnowledgeGraph, v string) { g.Facilitator.PathToRootCause = &v }), "sprinkler", "irrigation"),
		on("fix", markFix, "fix", "repair", "replace"),
		on("legal", markLegal, "abatement", "citation", "violation"),
		on("contact", markDriver(func(g *model.KnowledgeGraph) { g.Driver.Contact = ptr(true) }), "contact", "call", "speak", "talk"),
		on("behavior", markDriver(func(g *model.KnowledgeGraph) { g.Driver.BehaviorModification = ptr(true) }), "educate", "advise"),
	}
}

func markGenus(p *pass, g nlp.Gram) {
	w := g.At(0)
	genus, ok := model.ParseGenus(w.LemOrText())
	if !ok {
		p.drift("genus", w)
		return
	}
	p.graph.Breeding.Genus = &genus
	p.tag(w, model.TagSource)
}

func markSpecies(p *pass, g nlp.Gram) {
	w := g.At(0)
	species, ok := model.ParseSpecies(w.LemOrText())
	if !ok {
		p.drift("species", w)
		return
	}
	p.graph.Breeding.Species = &species
	p.tag(w, model.TagSource)
}

// negatable reports false when the word right before the trigger is "no",
// tagging the negator. The trigger itself is always tagged.
func negatable(p *pass, g nlp.Gram) bool {
	value := true
	if prev := g.At(-1); prev.LemOrText() == "no" {
		value = false
		p.tag(prev, model.TagSource)
	}
	p.tag(g.At(0), model.TagSource)
	return value
}

func markBreeding(p *pass, g nlp.Gram) {
	p.graph.Breeding.IsBreedingExplicit = ptr(negatable(p, g))
}

func markFish(p *pass, g nlp.Gram) {
	p.graph.Breeding.HasFish = ptr(negatable(p, g))
}

func markInstar(p *pass, g nlp.Gram) {
	ordinal := g.At(-1)
	n, ok := numeric.FromOrdinal(ordinal.Text)
	if !ok {
		p.miss(g, "instar without ordinal")
		return
	}
	stage, ok := model.LifeStageFromInstar(n)
	if !ok {
		p.miss(g, "instar ordinal has no life stage")
		return
	}
	p.graph.Breeding.Stage = &stage
	p.tag(ordinal, model.TagMeasurement)
	p.tag(g.At(0), model.TagMeasurement)
}

// quantityLookback is how many words before a count trigger may hold the number
const quantityLookback = 3

func quantity(set func(*model.KnowledgeGraph, int)) matchFunc {
	return func(p *pass, g nlp.Gram) {
		p.tag(g.At(0), model.TagMeasurement)
		for off := -1; off >= -quantityLookback; off-- {
			w := g.At(off)
			if n, ok := numeric.FromNumber(w.Text); ok {
				p.tag(w, model.TagMeasurement)
				set(p.graph, n)
				return
			}
		}
		p.miss(g, "no quantity before count word")
	}
}

func markStage(p *pass, g nlp.Gram) {
	var (
		n    int
		ok   bool
		used []nlp.Word
	)
	if all := g.At(-1); all.LemOrText() == "all" {
		n, ok = model.HighestLifeStage, true
		used = append(used, all)
	} else if n, ok = numeric.FromNumber(g.At(1).Text); ok {
		used = append(used, g.At(1))
		if g.At(2).LemOrText() == "and" {
			if m, ok2 := numeric.FromNumber(g.At(3).Text); ok2 {
				n = m
				used = append(used, g.At(2), g.At(3))
			}
		}
	}
	if !ok {
		p.miss(g, "stage without number")
		return
	}
	stage, ok := model.LifeStageFromInt(n)
	if !ok {
		p.miss(g, "stage number has no life stage")
		return
	}
	p.graph.Breeding.Stage = &stage
	p.tag(g.At(0), model.TagMeasurement)
	for _, w := range used {
		p.tag(w, model.TagMeasurement)
	}
}

// reportType sets the Fieldseeker report type only when none is set yet; the
// first classification in a transcript is authoritative.
func reportType(rt model.ReportType) matchFunc {
	return func(p *pass, g nlp.Gram) {
		if existing := p.graph.Fieldseeker.ReportType; existing != nil {
			p.logger.Info("report type already set, ignoring",
				zap.String("existing", string(*existing)),
				zap.String("ignored", string(rt)),
			)
			return
		}
		p.graph.Fieldseeker.ReportType = ptr(rt)
		p.tag(g.At(0), model.TagSource)
	}
}

func markPool(p *pass, g nlp.Gram) {
	markDimensions(p, g)
	markConditionWindow(-2, 3)(p, g)
}

func markSourceType(p *pass, g nlp.Gram) {
	w := g.At(0)
	st, ok := model.ParseSourceType(w.LemOrText())
	if !ok {
		p.drift("source type", w)
		return
	}
	p.graph.Source.Type = &st
	p.tag(w, model.TagSource)
}

var treatments = map[string]model.Treatment{
	"treat":     model.TreatmentGeneral,
	"larvicide": model.TreatmentLarvicide,
	"bti":       model.TreatmentBti,
	"oil":       model.TreatmentOil,
}

func markTreatment(p *pass, g nlp.Gram) {
	w := g.At(0)
	t, ok := treatments[w.LemOrText()]
	if !ok {
		p.drift("treatment", w)
		return
	}
	p.graph.Breeding.Treatment = &t
	p.tag(w, model.TagAction)
}

var eliminations = map[string]model.SourceElimination{
	"dump":   model.EliminationDumped,
	"drain":  model.EliminationDrained,
	"remove": model.EliminationRemoved,
}

func markElimination(p *pass, g nlp.Gram) {
	w := g.At(0)
	e, ok := eliminations[w.LemOrText()]
	if !ok {
		p.drift("source elimination", w)
		return
	}
	p.graph.Source.SourceElimination = &e
	p.tag(w, model.TagAction)
}

func markPreemptive(p *pass, g nlp.Gram) {
	p.graph.Source.PreemptiveTreatment = ptr(true)
	p.tag(g.At(0), model.TagAction)
}

func markProduction(p *pass, g nlp.Gram) {
	capacity := model.ProductionMedium
	qualifier := g.At(-1)
	switch qualifier.LemOrText() {
	case "highly", "very", "heavy":
		capacity = model.ProductionHigh
	case "low", "little", "no", "not":
		capacity = model.ProductionLow
	default:
		qualifier = nlp.EmptyWord
	}
	p.graph.Source.ProductionCapacity = &capacity
	if !qualifier.IsEmpty() {
		p.tag(qualifier, model.TagSource)
	}
	p.tag(g.At(0), model.TagSource)
}

// fillerWords are skipped when looking for the object a verb refers to
var fillerWords = map[string]struct{}{
	"be":  {},
	"the": {},
	"a":   {},
	"an":  {},
}

func markBlocking(p *pass, g nlp.Gram) {
	for off := -1; off >= -2; off-- {
		w := g.At(off)
		if w.IsEmpty() {
			break
		}
		if _, skip := fillerWords[w.LemOrText()]; skip {
			continue
		}
		if w.Pos == nlp.PosPunctuation {
			break
		}
		p.graph.Facilitator.Blocking = ptr(w.Text)
		p.tag(w, model.TagSource)
		p.tag(g.At(0), model.TagSource)
		return
	}
	p.miss(g, "blocking without blocked object")
}

func markPath(set func(*model.KnowledgeGraph, string)) matchFunc {
	return func(p *pass, g nlp.Gram) {
		w := g.At(0)
		set(p.graph, w.LemOrText())
		p.tag(w, model.TagSource)
	}
}

func markFix(p *pass, g nlp.Gram) {
	for off := 1; off <= 3; off++ {
		w := g.At(off)
		if w.IsEmpty() || w.Pos == nlp.PosPunctuation {
			break
		}
		if _, skip := fillerWords[w.LemOrText()]; skip {
			continue
		}
		p.graph.RootCause.Fix = ptr(w.Text)
		p.tag(g.At(0), model.TagAction)
		p.tag(w, model.TagAction)
		return
	}
	p.miss(g, "fix without object")
}

func markLegal(p *pass, g nlp.Gram) {
	p.graph.RootCause.LegalAbatement = ptr(true)
	p.tag(g.At(0), model.TagAction)
}

func markDriver(set func(*model.KnowledgeGraph)) matchFunc {
	return func(p *pass, g nlp.Gram) {
		set(p.graph)
		p.tag(g.At(0), model.TagAction)
	}
}
