// ABOUTME: CLI commands for viewing and editing configuration.
// ABOUTME: Settings persist to the JSON config file; env vars still override.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courtlog/internal/config"
	"courtlog/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	Long: `View and edit courtlog configuration.

Settings: scheme, city, lang, data_dir. API keys are taken from the
environment (OPENAI_API_KEY, COURTLOG_WEATHER_KEY); environment
variables override anything set here.

EXAMPLES:

  courtlog config show
  courtlog config set scheme alternate
  courtlog config set city Seoul`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("config file: %s\n", config.GetConfigPath())
		fmt.Printf("  data_dir: %s\n", cfg.GetDataDir())
		fmt.Printf("  scheme:   %s\n", cfg.GetScheme())
		fmt.Printf("  city:     %s\n", orUnset(cfg.City))
		fmt.Printf("  lang:     %s\n", orUnset(cfg.Lang))
		fmt.Printf("  openai:   %s\n", keyStatus(cfg.OpenAIKey))
		fmt.Printf("  weather:  %s\n", keyStatus(cfg.WeatherKey))
		faint.Println("environment variables override file settings")
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "scheme":
			if !models.IsValidScheme(value) {
				return fmt.Errorf("unknown scheme: %s (use primary or alternate)", value)
			}
			cfg.Scheme = value
		case "city":
			cfg.City = value
		case "lang":
			cfg.Lang = value
		case "data_dir":
			cfg.DataDir = value
		default:
			return fmt.Errorf("unknown setting: %s (use scheme, city, lang, or data_dir)", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s = %s", key, value)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func keyStatus(key string) string {
	if key == "" {
		return "not configured"
	}
	return "configured"
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
