package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nidus-extract configuration",
	Long: `Manage nidus-extract configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (NIDUS_*, e.g. NIDUS_LLM_PROVIDER)
3. Config file (~/.nidus/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after merging defaults, the config file and environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(yamlData))

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nConfiguration problems:\n%v\n", err)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.nidus/config.yaml with all available options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".nidus", "config.yaml")
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", configPath)
		fmt.Fprintf(cmd.OutOrStdout(), "\nTo view the configuration:\n")
		fmt.Fprintf(cmd.OutOrStdout(), "  nidus-extract config show\n")
		return nil
	},
}

// writeDefaultConfig writes the default configuration with a comment header.
// An existing file is never overwritten.
func writeDefaultConfig(configPath string) (err error) {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'nidus-extract config show' to view it, or delete it first to recreate", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	yamlData, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	printf := func(format string, a ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(f, format, a...)
	}

	printf("# nidus-extract configuration\n")
	printf("#\n")
	printf("# Configuration hierarchy (highest to lowest priority):\n")
	printf("#   1. CLI flags\n")
	printf("#   2. Environment variables (NIDUS_*)\n")
	printf("#   3. This config file\n")
	printf("#   4. Built-in defaults\n\n")
	printf("%s", yamlData)
	printf("\n# API keys are best kept in the environment rather than this file:\n")
	printf("#   export OPENAI_API_KEY=sk-...\n")
	printf("#   export ANTHROPIC_API_KEY=sk-ant-...\n")
	printf("#   export OLLAMA_BASE_URL=http://localhost:11434\n")

	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
