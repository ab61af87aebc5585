package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/csv2bib/internal/bibtex"
	"github.com/pdiddy/csv2bib/internal/convert"
	"github.com/pdiddy/csv2bib/internal/csl"
	"github.com/pdiddy/csv2bib/internal/tabular"
	"github.com/pdiddy/csv2bib/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT [OUTPUT]",
	Short: "Convert a CSV or XLSX bibliography to BibTeX",
	Long: `Convert reads a bibliographic table with a header row and writes one
@article entry per data row. OUTPUT defaults to standard output; pass a
path ending in .bib to write a file. Output is buffered and written in a
single operation, so an aborted run leaves no partial file behind.

By default rows whose cell count disagrees with the header are skipped and
summarized on stderr; --strict aborts the run on the first such row.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := ""
		if len(args) == 2 {
			output = args[1]
		}
		return runConvert(input, output)
	},
}

func init() {
	convertCmd.Flags().Bool("strict", false, "abort on the first malformed row instead of skipping it")
	convertCmd.Flags().String("delimiter", convert.DefaultAuthorDelimiter, "author-list separator in the source column")
	convertCmd.Flags().String("csv-delimiter", ",", "cell separator for CSV input (\",\", \";\", \"tab\", ...)")
	convertCmd.Flags().String("format", string(types.FormatBibTeX), "output format: bib or csl")
	convertCmd.Flags().String("input-format", "", "input format: csv or xlsx (default: by file extension)")
	convertCmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	convertCmd.Flags().String("mapping", "", "YAML file overriding the column-to-field mapping")

	viper.BindPFlag("strict", convertCmd.Flags().Lookup("strict"))
	viper.BindPFlag("authors.delimiter", convertCmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("csv.delimiter", convertCmd.Flags().Lookup("csv-delimiter"))
	viper.BindPFlag("format", convertCmd.Flags().Lookup("format"))
	viper.BindPFlag("input.format", convertCmd.Flags().Lookup("input-format"))
	viper.BindPFlag("input.sheet", convertCmd.Flags().Lookup("sheet"))
	viper.BindPFlag("mapping_file", convertCmd.Flags().Lookup("mapping"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(input, output string) error {
	mapping, err := activeMapping()
	if err != nil {
		return err
	}

	csvDelim, err := cellDelimiter(viper.GetString("csv.delimiter"))
	if err != nil {
		return err
	}

	table, err := tabular.Read(input,
		tabular.Format(viper.GetString("input.format")),
		viper.GetString("input.sheet"),
		tabular.CSVOptions{Delimiter: csvDelim})
	if err != nil {
		return err
	}

	cfg := types.ConvertConfig{
		Mapping:         mapping,
		Strict:          viper.GetBool("strict"),
		AuthorDelimiter: viper.GetString("authors.delimiter"),
	}
	entries, report, err := convert.Run(table, cfg)
	if err != nil {
		return err
	}

	text, err := render(entries, types.OutputFormat(viper.GetString("format")))
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		fmt.Print(text)
	} else if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	printSummary(os.Stderr, input, report)
	return nil
}

// render serializes entries in the requested output format.
func render(entries []types.Entry, format types.OutputFormat) (string, error) {
	switch format {
	case types.FormatBibTeX:
		return bibtex.Format(entries), nil
	case types.FormatCSL:
		var b strings.Builder
		if err := csl.Format(entries, &b); err != nil {
			return "", fmt.Errorf("encoding CSL: %w", err)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}

// cellDelimiter resolves a CSV cell-separator spelling to a rune.
func cellDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "\t", "\\t", "tab":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid csv delimiter %q", s)
	}
	return runes[0], nil
}

// printSummary reports the run outcome on w, listing skipped rows by line.
func printSummary(w io.Writer, input string, report types.Report) {
	fmt.Fprintf(w, "%s: %d entr%s converted\n", input, report.Converted, plural(report.Converted, "y", "ies"))
	if !report.HasSkipped() {
		return
	}
	fmt.Fprintf(w, "%d row(s) skipped:\n", len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Fprintf(w, "  line %d: %s\n", s.Line, s.Reason)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
