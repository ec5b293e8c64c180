// Package batch handles batch processing of PDF folders
package batch

import (
	"context"
	"fmt"

	"fjacquet/pp-parser/cmd/common"
	"fjacquet/pp-parser/cmd/root"
	"fjacquet/pp-parser/internal/batch"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/logging"

	"github.com/spf13/cobra"
)

// Save enables persisting the extracted documents to the database.
var Save bool

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract payment orders from every PDF in a directory",
	Long: `Extract the payment orders of every PDF file in the input directory into one
CSV or XLSX file, optionally saving them to PostgreSQL as well.

Files are processed concurrently (batch.workers). A file that cannot be read is
logged and skipped. Without -o the output is written to the current directory
as documents_<first>_<last>.<format>.

Example:
  pp-parser batch -i input/ -o documents.csv --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}
		f := root.SharedFlags
		return Run(cmd.Context(), c, Options{
			InputDir:   f.Input,
			OutputFile: f.Output,
			Format:     f.Format,
			Save:       Save,
		})
	},
}

func init() {
	Cmd.Flags().BoolVar(&Save, "save", false, "Also save the documents to the database")
}

// Options configures one batch run.
type Options struct {
	InputDir   string
	OutputFile string
	Format     string
	Save       bool
}

// Run processes opts.InputDir and writes or saves the result.
func Run(ctx context.Context, c *container.Container, opts Options) error {
	if opts.InputDir == "" {
		return fmt.Errorf("input directory must be specified")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := c.GetLogger().WithField(logging.FieldInputFile, opts.InputDir)
	log.Info("Batch command called")

	format, err := common.ResolveFormat(opts.Format, opts.OutputFile, c.GetConfig().Export.Format)
	if err != nil {
		return err
	}

	res, err := c.GetProcessor().ProcessDirectory(ctx, opts.InputDir)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	output := opts.OutputFile
	if output == "" {
		output = batch.OutputPath(".", res.DateRange, format)
	}
	if err := common.WriteOutput(c, res.Documents, output, format); err != nil {
		return err
	}

	if opts.Save {
		loader, err := c.GetLoader(ctx)
		if err != nil {
			return err
		}
		stats, err := loader.SaveDocuments(ctx, res.Documents)
		if err != nil {
			return err
		}
		log.Info("Saved documents to database",
			logging.F("saved", stats.Saved),
			logging.F("duplicates", stats.Duplicates),
			logging.F("failed", stats.Failed))
	}

	log.Info("Batch processing completed",
		logging.F(logging.FieldOutputFile, output),
		logging.F(logging.FieldCount, len(res.Documents)),
		logging.F("files", res.Files),
		logging.F("failed_files", len(res.Failed)))
	return nil
}
