// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/pp-parser/internal/config"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/export"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"
	"fjacquet/pp-parser/internal/parser"
)

// ResolveFormat picks the export format: the explicit flag first, then a known
// output file extension, then the configured default.
func ResolveFormat(flag, outputFile, configured string) (string, error) {
	if flag != "" {
		f := strings.ToLower(flag)
		if f != config.FormatCSV && f != config.FormatXLSX {
			return "", fmt.Errorf("unsupported format %q (must be %s or %s)", flag, config.FormatCSV, config.FormatXLSX)
		}
		return f, nil
	}
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".xlsx":
		return config.FormatXLSX, nil
	case ".csv":
		return config.FormatCSV, nil
	}
	if configured == "" {
		return config.FormatCSV, nil
	}
	return configured, nil
}

// ValidateInput runs the parser's format check and turns a negative answer into an error.
func ValidateInput(v parser.Validator, inputFile string, log logging.Logger) error {
	log.Info("Validating format...")
	ok, err := v.ValidateFormat(inputFile)
	if err != nil {
		return fmt.Errorf("error validating file: %w", err)
	}
	if !ok {
		return fmt.Errorf("the file is not a valid PDF: %s", inputFile)
	}
	log.Info("Validation successful.")
	return nil
}

// WriteOutput writes docs to outputFile in the given format.
func WriteOutput(c *container.Container, docs []models.PaymentDocument, outputFile, format string) error {
	if docs == nil {
		docs = []models.PaymentDocument{}
	}
	return export.WriteDocuments(docs, outputFile, format, c.GetConfig().Export.SheetName, c.GetLogger())
}
