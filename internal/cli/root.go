package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gleipnir-Technology/nidus-extract/internal/logging"
	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nidus-extract",
	Short: "Nidus - knowledge extraction from mosquito-control field reports",
	Long: `Nidus reads the free-text transcript of a mosquito-control field report
and infers a structured knowledge graph: what is breeding, at what stage and
in what numbers, what the water source is and how big, what was done about it,
and who needs to be contacted.

Every inferred value is tagged back to the span of the transcript that
justified it, so a reviewer can see why the graph says what it says.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nidus-extract %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.nidus/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".nidus"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	setDefaults(viper.GetViper(), model.DefaultConfig())

	// NIDUS_LLM_PROVIDER overrides llm.provider, and so on
	viper.SetEnvPrefix("NIDUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so environment variables reach Unmarshal
func setDefaults(v *viper.Viper, d *model.Config) {
	v.SetDefault("tagger.lexical", d.Tagger.Lexical)
	v.SetDefault("tagger.lemma", d.Tagger.Lemma)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	v.SetDefault("cache.disk_dir", d.Cache.DiskDir)
	v.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)
	v.SetDefault("concurrency.workers", d.Concurrency.Workers)
	v.SetDefault("rate_limiting.transcripts_per_second", d.RateLimiting.TranscriptsPerSecond)
	v.SetDefault("rate_limiting.burst_size", d.RateLimiting.BurstSize)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.include_tags", d.Output.IncludeTags)
	v.SetDefault("output.verbose", d.Output.Verbose)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.api_key", d.LLM.APIKey)
	v.SetDefault("llm.base_url", d.LLM.BaseURL)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.max_tokens", d.LLM.MaxTokens)
	v.SetDefault("llm.strict_facts", d.LLM.StrictFacts)
	v.SetDefault("llm.http_proxy", d.LLM.HTTPProxy)
	v.SetDefault("llm.https_proxy", d.LLM.HTTPSProxy)
	v.SetDefault("llm.no_proxy", d.LLM.NoProxy)
}

// loadConfig resolves defaults, the config file and the environment into a
// validated Config. Command flags are applied afterwards by the caller.
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if v.GetBool("verbose") {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// applyProviderEnv fills provider credentials from their conventional
// environment variables when the config leaves them empty.
func applyProviderEnv(cfg *model.LLMConfig) error {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if cfg.BaseURL == "" {
			cfg.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}
	return nil
}

// newLogger builds the process logger; the caller syncs it on exit
func newLogger(cfg *model.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
