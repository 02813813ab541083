// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-tools CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-tools/internal/arxiv"
	"github.com/pdiddy/arxiv-tools/internal/secrets"
	"github.com/pdiddy/arxiv-tools/internal/tools"
	"github.com/pdiddy/arxiv-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the arxiv-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-tools",
	Short: "arXiv search, summarize, and answer tools",
	Long: `arxiv-tools exposes three arXiv operations as subcommands: search papers
by free-text query, summarize a single paper by ID or URL, and answer a
question against a paper's abstract with keyword matching.

Each subcommand prints one structured result envelope to stdout, so agent
frameworks can invoke the operations as tools and parse the output
mechanically. A failed operation produces an error envelope, not a
non-zero exit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-tools.yaml or ~/.config/arxiv-tools/config.yaml)")
	rootCmd.PersistentFlags().String("format", "json", "envelope output format: json or yaml")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-tools"))
		}
	}

	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "arxiv-tools/"+version)
	viper.SetDefault("max_retries", 5)

	viper.SetEnvPrefix("ARXIV_TOOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the arXiv client settings from viper and secrets.
// A configured contact email is appended to the User-Agent, as the arXiv
// API terms of use request.
func clientConfig() types.ClientConfig {
	cfg := types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		MaxRetries: viper.GetInt("max_retries"),
	}
	if email := secrets.ContactEmail(loadedSecrets); email != "" {
		cfg.UserAgent = fmt.Sprintf("%s (%s)", cfg.UserAgent, email)
	}
	return cfg
}

// newTools builds the tool operations backed by a live API client.
func newTools() *tools.Tools {
	return tools.New(arxiv.NewClient(clientConfig()))
}

// emitEnvelope writes the result envelope to stdout in the selected format.
func emitEnvelope(cmd *cobra.Command, envelope any) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(envelope)
	case "yaml":
		data, err := yaml.Marshal(envelope)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
