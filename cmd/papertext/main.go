// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papertext CLI, a batch utility
// that converts academic PDF papers into cleaned plain-text files for
// language-model consumption.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the papertext CLI.
var rootCmd = &cobra.Command{
	Use:   "papertext",
	Short: "Convert academic PDF papers to cleaned plain text",
	Long: `papertext converts academic PDF papers into cleaned plain-text files
suitable for language-model consumption. Each PDF is run through a PDF
extraction backend, normalized (character filtering, hyphenation and
whitespace repair, formula removal, paragraph grouping), and written as
one .txt file per input.

Processing is sequential and per-file failures do not abort the batch;
the exit code reflects overall batch success.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./papertext.yaml or ~/.config/papertext/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("papertext")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "papertext"))
		}
	}

	viper.SetEnvPrefix("PAPERTEXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
