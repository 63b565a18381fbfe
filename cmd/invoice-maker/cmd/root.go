package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-maker/internal/config"
	"github.com/rezonia/invoice-maker/internal/money"
	"github.com/rezonia/invoice-maker/internal/pdf"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	configPath   string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-maker",
	Short: "Create, validate, and export invoice PDFs",
	Long: `Invoice Maker turns structured invoice data into formatted PDF documents.

Invoices are plain JSON documents: header fields, customer details, and
a list of line items. The tool validates them, renders a fixed-layout
A4 document, and writes it wherever you point it.

Examples:
  # Start from a fresh invoice
  invoice-maker new -o draft.json

  # Validate one or more invoices
  invoice-maker validate draft.json

  # Export to PDF in the documents folder
  invoice-maker export draft.json

  # Export to a specific file and open it
  invoice-maker export draft.json --output ./out/invoice.pdf --open

  # Run the HTTP API
  invoice-maker serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to layout config file (YAML)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// loadConfig reads the layout config named by --config, or defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		printVerbose("Loaded layout config from %s\n", configPath)
	}
	return cfg, nil
}

func newGenerator(cfg *config.Config) *pdf.Generator {
	return pdf.NewGenerator(pdf.FromConfig(cfg), money.Formatter{Symbol: cfg.CurrencySymbol})
}

// collectFiles expands glob patterns and directories into a flat list
// of invoice JSON files.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("cannot access %s: %w", arg, err)
			}
			if info.IsDir() {
				entries, err := filepath.Glob(filepath.Join(arg, "*.json"))
				if err != nil {
					return nil, err
				}
				files = append(files, entries...)
				continue
			}
			files = append(files, arg)
			continue
		}

		files = append(files, matches...)
	}

	return files, nil
}
