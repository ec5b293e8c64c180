// Package parse handles single-file payment order extraction
package parse

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/pp-parser/cmd/common"
	"fjacquet/pp-parser/cmd/root"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract payment orders from one PDF file",
	Long: `Extract every payment order of a PDF file and write them to CSV or XLSX.

Example:
  pp-parser parse -i orders/pp-45.pdf -o documents.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := root.GetContainer()
		if c == nil {
			return fmt.Errorf("container not initialized")
		}
		f := root.SharedFlags
		return Run(cmd.Context(), c, f.Input, f.Output, f.Format, f.Validate)
	},
}

// Run extracts the documents of inputFile and writes them to outputFile.
func Run(ctx context.Context, c *container.Container, inputFile, outputFile, format string, validate bool) error {
	if inputFile == "" || outputFile == "" {
		return fmt.Errorf("input and output files must be specified")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := c.GetLogger().WithFields(
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile))
	log.Info("Parse command called")

	format, err := common.ResolveFormat(format, outputFile, c.GetConfig().Export.Format)
	if err != nil {
		return err
	}

	p := c.GetParser()
	if validate || c.GetConfig().PDF.Validate {
		if err := common.ValidateInput(p, inputFile, log); err != nil {
			return err
		}
	}

	docs, err := p.ProcessFileContext(ctx, inputFile)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", inputFile, err)
	}
	if err := common.WriteOutput(c, docs, outputFile, format); err != nil {
		return err
	}

	log.Info("Conversion completed successfully!",
		logging.F(logging.FieldCount, len(docs)),
		logging.F(logging.FieldFormat, strings.ToUpper(format)))
	return nil
}
