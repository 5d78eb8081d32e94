package cli

import (
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// extractionFlags are shared by the extract and batch commands. They only
// override the config when set on the command line.
type extractionFlags struct {
	format      string
	noTags      bool
	noCache     bool
	lexical     string
	lemma       string
	llmProvider string
	llmModel    string
}

func (f *extractionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "json", "output format (json, yaml)")
	flags.BoolVar(&f.noTags, "no-tags", false, "omit transcript tags from the output")
	flags.BoolVar(&f.noCache, "no-cache", false, "disable the graph cache")
	flags.StringVar(&f.lexical, "lexical", "rules", "lexical tagger (rules, prose)")
	flags.StringVar(&f.lemma, "lemma", "rules", "lemma tagger (rules, golem)")
	flags.StringVar(&f.llmProvider, "llm", "", "write a narrative with this provider (openai, anthropic, ollama)")
	flags.StringVar(&f.llmModel, "llm-model", "", "narrative model name")
}

func (f *extractionFlags) apply(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if flags.Changed("no-tags") {
		cfg.Output.IncludeTags = !f.noTags
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !f.noCache
	}
	if flags.Changed("lexical") {
		cfg.Tagger.Lexical = f.lexical
	}
	if flags.Changed("lemma") {
		cfg.Tagger.Lemma = f.lemma
	}
	if flags.Changed("llm") {
		cfg.LLM.Provider = f.llmProvider
	}
	if flags.Changed("llm-model") {
		cfg.LLM.Model = f.llmModel
	}
}

// resolveConfig loads the layered config, applies command flags and validates
func resolveConfig(cmd *cobra.Command, f *extractionFlags) (*model.Config, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)

	if err := applyProviderEnv(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
