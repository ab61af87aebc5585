package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/csv2bib/pkg/types"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Print the active column-to-field mapping as YAML",
	Long: `Mapping prints the column-to-field table the convert command would use,
honoring --mapping and the config file. The output is itself a valid
mapping file, so it can be saved, edited, and passed back via --mapping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping, err := activeMapping()
		if err != nil {
			return err
		}
		if mapping == nil {
			mapping = types.DefaultMapping()
		}
		data, err := yaml.Marshal(mapping)
		if err != nil {
			return fmt.Errorf("encoding mapping: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}

// activeMapping loads the column-to-field mapping override named by the
// mapping_file setting, or returns nil to select the built-in default.
// Plain YAML parsing (not viper) keeps column names case-sensitive.
func activeMapping() (types.FieldMapping, error) {
	path := viper.GetString("mapping_file")
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file: %w", err)
	}
	var mapping types.FieldMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parsing mapping file: %w", err)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("mapping file %s declares no columns", path)
	}
	return mapping, nil
}
