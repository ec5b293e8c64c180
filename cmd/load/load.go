// Package load saves previously exported documents to the database
package load

import (
	"context"
	"fmt"
	"os"

	"fjacquet/pp-parser/cmd/root"
	"fjacquet/pp-parser/internal/common"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/export"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the load command
var Cmd = &cobra.Command{
	Use:   "load",
	Short: "Save exported documents to the database",
	Long: `Read a CSV or XLSX file produced by parse or batch and save its rows to
PostgreSQL. Rows whose unique identifier is already stored are skipped.

Example:
  PP_DATABASE_DSN=postgres://... pp-parser load -i documents.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}
		return Run(cmd.Context(), c, root.SharedFlags.Input)
	},
}

// ReadRows reads exported rows from a CSV or XLSX file.
func ReadRows(inputFile string, log logging.Logger) ([]models.DocumentRow, error) {
	if export.FormatFromPath(inputFile) == "xlsx" {
		f, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
		if err != nil {
			return nil, fmt.Errorf("error opening input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return export.ReadRowsXLSX(f)
	}
	return common.ReadCSVFile[models.DocumentRow](inputFile, log)
}

// Run saves the rows of inputFile.
func Run(ctx context.Context, c *container.Container, inputFile string) error {
	if inputFile == "" {
		return fmt.Errorf("input file must be specified")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := c.GetLogger().WithField(logging.FieldInputFile, inputFile)
	rows, err := ReadRows(inputFile, log)
	if err != nil {
		return err
	}
	log.Info("Loaded rows", logging.F(logging.FieldCount, len(rows)))

	loader, err := c.GetLoader(ctx)
	if err != nil {
		return err
	}
	stats, err := loader.SaveRows(ctx, rows)
	if err != nil {
		return err
	}

	log.Info("Load completed",
		logging.F("saved", stats.Saved),
		logging.F("duplicates", stats.Duplicates),
		logging.F("failed", stats.Failed))
	return nil
}
