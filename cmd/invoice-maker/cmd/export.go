package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-maker/internal/export"
	"github.com/rezonia/invoice-maker/internal/model"
)

var (
	exportOutput string
	exportOpen   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export invoice files to PDF",
	Long: `Validate invoice JSON files and export each as a formatted PDF.

Invalid invoices are reported with their full error list and skipped;
nothing is written for them. With no --output the PDF goes to the
documents folder as Invoice_{number}.pdf.

Examples:
  invoice-maker export draft.json
  invoice-maker export draft.json --output ./out/invoice.pdf
  invoice-maker export invoices/*.json --output ./out
  invoice-maker export draft.json --open`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (single invoice, .pdf) or directory")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "Open each exported PDF with the default viewer")
}

func runExport(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to export")
	}

	if strings.HasSuffix(exportOutput, ".pdf") && len(files) > 1 {
		return fmt.Errorf("--output names a single file but %d invoices were given", len(files))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logWriter := io.Writer(io.Discard)
	if verbose {
		logWriter = os.Stderr
	}
	manager := export.NewManager(newGenerator(cfg), export.WithLogWriter(logWriter))

	failed := 0
	for _, file := range files {
		inv, err := readInvoice(file)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", file, err)
			failed++
			continue
		}

		// Validate up front so the user gets the complete fix-it
		// list; export is never attempted for invalid data.
		if errs := model.ValidateInvoice(inv); len(errs) > 0 {
			fmt.Printf("✗ %s:\n%s\n", file, model.FormatErrors(errs))
			failed++
			continue
		}

		res := exportOne(manager, inv)
		if res.OK {
			fmt.Printf("✓ %s: %s\n", file, res.Message)
		} else {
			fmt.Printf("✗ %s: %s\n", file, res.Message)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("export failed for %d of %d invoices", failed, len(files))
	}
	return nil
}

func exportOne(manager *export.Manager, inv *model.Invoice) export.Result {
	dest := ""
	switch {
	case exportOutput == "":
	case strings.HasSuffix(exportOutput, ".pdf"):
		dest = exportOutput
	default:
		dest = filepath.Join(exportOutput, export.DefaultFilename(inv))
	}

	if exportOpen {
		return manager.ExportAndOpen(inv, dest)
	}
	return manager.Export(inv, dest)
}
