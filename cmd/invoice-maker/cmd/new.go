package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-maker/internal/model"
)

var newOutput string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a fresh invoice document",
	Long: `Create a default invoice: a generated number and today's date, empty
customer fields, and one empty line item. Edit the JSON, then feed it
to validate or export.

Examples:
  invoice-maker new
  invoice-maker new -o draft.json`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Write to file instead of stdout")
}

func runNew(cmd *cobra.Command, args []string) error {
	inv := model.CreateDefault()

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if newOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(newOutput, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", newOutput, err)
	}
	printVerbose("Wrote default invoice to %s\n", newOutput)
	return nil
}
