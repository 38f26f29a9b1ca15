package cmd

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/lbl-cli/internal/core/services"
	"github.com/kamal-hamza/lbl-cli/pkg/ui"
)

var (
	payloadRow  int
	payloadCopy bool
)

var payloadCmd = &cobra.Command{
	Use:   "payload <input.csv|input.xlsx>",
	Short: "Print the QR payload for one catalog row",
	Long: `Print the exact text that would be encoded into the QR code for a given
row. Useful for verifying what a scanner will read.

Rows are numbered from 1, header excluded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPayload,
}

func init() {
	payloadCmd.Flags().IntVarP(&payloadRow, "row", "r", 1, "data row number (1-based)")
	payloadCmd.Flags().BoolVarP(&payloadCopy, "copy", "c", false, "copy the payload to the clipboard")
}

func runPayload(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	table, err := tableReader.Read(ctx, args[0])
	if err != nil {
		return err
	}

	schema, err := resolverService.ResolveStrict(table.Columns)
	if err != nil {
		return err
	}

	if payloadRow < 1 || payloadRow > table.RowCount() {
		return fmt.Errorf("row %d out of range: input has %d data rows", payloadRow, table.RowCount())
	}

	extractor := services.NewExtractor(schema)
	data := extractor.Extract(table, payloadRow-1)
	payload := services.BuildPayload(data, time.Now().Format(appConfig.DateFormat))

	fmt.Println(payload)

	if payloadCopy {
		// Clipboard failures are non-fatal: headless environments
		// still get the printed payload.
		if err := clipboard.WriteAll(payload); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		} else {
			fmt.Println()
			fmt.Println(ui.FormatSuccess("Copied to clipboard"))
		}
	}
	return nil
}
