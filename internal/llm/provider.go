// Package llm writes an optional inspector-style narrative from an extracted
// knowledge graph. The narrative is never read back into the graph.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate writes a short note from the extracted facts
	Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest contains the input for narrative generation
type NarrateRequest struct {
	// Graph is the extracted knowledge; only its non-empty fields are shown to the model
	Graph *model.KnowledgeGraph

	// Prompt is an optional custom prompt (if empty, BuildPrompt is used)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// NarrateResponse contains the model's output
type NarrateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	Model   string
	APIKey  string
	BaseURL string
	Timeout int // seconds

	// StrictFacts rejects narratives quoting numbers that were never extracted
	StrictFacts bool

	MaxTokens int

	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Timeout:     30,
		StrictFacts: true,
		MaxTokens:   400,
	}
}

const systemPrompt = "You write short mosquito-control field inspection notes. " +
	"You only restate facts you are given and never add measurements, counts or species."

// BuildPrompt lists the extracted facts and asks for a short field note
func BuildPrompt(g *model.KnowledgeGraph) string {
	var b strings.Builder
	b.WriteString("Write a 2-3 sentence inspection note from these extracted facts.\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("1. Use ONLY the facts listed below.\n")
	b.WriteString("2. Do not invent numbers, species, treatments or causes.\n")
	b.WriteString("3. If a fact is missing, leave it out rather than guessing.\n\n")
	b.WriteString("Facts:\n")

	facts := Facts(g)
	if len(facts) == 0 {
		b.WriteString("- (nothing was extracted)\n")
	}
	for _, f := range facts {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}

// Facts renders every set field of g as one line, in graph order
func Facts(g *model.KnowledgeGraph) []string {
	if g == nil {
		return nil
	}
	var facts []string
	add := func(label string, v any) {
		facts = append(facts, fmt.Sprintf("%s: %v", label, v))
	}

	fs := g.Fieldseeker
	if fs.ReportType != nil {
		add("Report type", *fs.ReportType)
	}
	if fs.DipCount != nil {
		add("Dips taken", *fs.DipCount)
	}

	br := g.Breeding
	if br.Genus != nil {
		add("Genus", *br.Genus)
	}
	if br.Species != nil {
		add("Species", *br.Species)
	}
	if br.Stage != nil {
		add("Life stage", *br.Stage)
	}
	if br.Conditions != nil {
		add("Water condition", br.Conditions.Description())
	}
	if br.IsBreedingExplicit != nil {
		add("Breeding observed", *br.IsBreedingExplicit)
	}
	if br.EggQuantity != nil {
		add("Eggs", *br.EggQuantity)
	}
	if br.LarvaeQuantity != nil {
		add("Larvae", *br.LarvaeQuantity)
	}
	if br.PupaeQuantity != nil {
		add("Pupae", *br.PupaeQuantity)
	}
	if br.HasFish != nil {
		add("Fish present", *br.HasFish)
	}
	if br.Treatment != nil {
		add("Treatment", *br.Treatment)
	}

	src := g.Source
	if src.Type != nil {
		add("Source type", *src.Type)
	}
	if v := src.Volume; v != nil {
		add("Dimensions", fmt.Sprintf("%g %s long, %g %s wide, %g %s deep",
			v.Length.Value, v.Length.Unit, v.Width.Value, v.Width.Unit, v.Depth.Value, v.Depth.Unit))
	}
	if src.HasFish != nil {
		add("Fish in source", *src.HasFish)
	}
	if src.ProductionCapacity != nil {
		add("Production capacity", *src.ProductionCapacity)
	}
	if src.SourceElimination != nil {
		add("Source eliminated", *src.SourceElimination)
	}
	if src.PreemptiveTreatment != nil {
		add("Preemptive treatment", *src.PreemptiveTreatment)
	}

	if s := g.Facilitator.Blocking; s != nil {
		add("Blocked", *s)
	}
	if s := g.Facilitator.PathToSource; s != nil {
		add("Water reaches source via", *s)
	}
	if s := g.Facilitator.PathToRootCause; s != nil {
		add("Root cause path", *s)
	}
	if s := g.RootCause.Fix; s != nil {
		add("Fix", *s)
	}
	if b := g.RootCause.LegalAbatement; b != nil {
		add("Legal abatement", *b)
	}
	if b := g.Driver.Contact; b != nil {
		add("Resident contacted", *b)
	}
	if b := g.Driver.BehaviorModification; b != nil {
		add("Resident educated", *b)
	}
	return facts
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// unsupportedNumbers returns the numbers in text that do not appear in prompt
func unsupportedNumbers(text, prompt string) []string {
	allowed := make(map[string]bool)
	for _, n := range numberPattern.FindAllString(prompt, -1) {
		allowed[n] = true
	}

	var leaked []string
	seen := make(map[string]bool)
	for _, n := range numberPattern.FindAllString(text, -1) {
		if !allowed[n] && !seen[n] {
			seen[n] = true
			leaked = append(leaked, n)
		}
	}
	return leaked
}

// checkFacts enforces StrictFacts on a provider response
func checkFacts(cfg Config, text, prompt string) error {
	if !cfg.StrictFacts {
		return nil
	}
	if leaked := unsupportedNumbers(text, prompt); len(leaked) > 0 {
		return fmt.Errorf("FACT LEAK: narrative quotes numbers not in the extracted facts: %s", strings.Join(leaked, ", "))
	}
	return nil
}

func resolve(req NarrateRequest, cfg Config, defaultModel string) (prompt, modelName string, maxTokens int) {
	prompt = req.Prompt
	if prompt == "" {
		prompt = BuildPrompt(req.Graph)
	}

	modelName = req.Model
	if modelName == "" {
		modelName = cfg.Model
	}
	if modelName == "" {
		modelName = defaultModel
	}

	maxTokens = req.MaxTokens
	if maxTokens == 0 {
		maxTokens = cfg.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 400
	}
	return prompt, modelName, maxTokens
}
