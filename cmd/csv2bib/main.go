// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the csv2bib CLI.
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

// rootCmd is the base command for the csv2bib CLI.
var rootCmd = &cobra.Command{
	Use:   "csv2bib",
	Short: "Convert tabular bibliographies to BibTeX",
	Long: `csv2bib converts bibliographic records exported as CSV or XLSX tables
(Scopus-style column names by default) into BibTeX article entries for
import into reference managers such as Zotero or JabRef.

Column-to-field mapping, author-list delimiter, and strict-mode behavior
can be set per run with flags or persistently through a config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./csv2bib.yaml or ~/.config/csv2bib/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("csv2bib")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "csv2bib"))
		}
	}

	viper.SetEnvPrefix("CSV2BIB")
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
