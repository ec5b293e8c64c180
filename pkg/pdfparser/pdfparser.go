// Package pdfparser is the public entry point for extracting payment orders
// from PDF files and converting them to CSV or XLSX.
package pdfparser

import (
	"context"
	"fmt"
	"io"

	"fjacquet/pp-parser/internal/export"
	"fjacquet/pp-parser/internal/layout"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"
	internal "fjacquet/pp-parser/internal/pdfparser"
)

// Document is one extracted payment order.
type Document = models.PaymentDocument

// Options tunes an Extractor. The zero value uses the built-in layout.
type Options struct {
	// TemplateFile is an optional YAML layout template.
	TemplateFile  string
	LineTolerance float64
	WordGap       float64
	// LogOutput receives log lines; nil discards them.
	LogOutput io.Writer
	LogLevel  string
}

// Extractor extracts payment orders from PDF files.
type Extractor struct {
	parser *internal.Parser
	logger logging.Logger
}

// NewExtractor builds an Extractor from opts.
func NewExtractor(opts Options) (*Extractor, error) {
	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}
	level := opts.LogLevel
	if level == "" {
		level = "info"
	}
	logger := logging.NewLogrusAdapterWithOutput(level, "text", out)

	template := layout.DefaultTemplate()
	if opts.TemplateFile != "" {
		t, err := layout.LoadTemplate(opts.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout template: %w", err)
		}
		template = t
	}

	opener := internal.NewLedongthucOpener(opts.LineTolerance, opts.WordGap)
	return &Extractor{
		parser: internal.NewParser(logger, template, opener),
		logger: logger,
	}, nil
}

// Extract returns the normalized payment orders found in pdfFile.
func (e *Extractor) Extract(ctx context.Context, pdfFile string) ([]Document, error) {
	return e.parser.ProcessFileContext(ctx, pdfFile)
}

// Convert extracts pdfFile and writes the result to outFile as csv or xlsx.
// An empty format is derived from the extension of outFile.
func (e *Extractor) Convert(ctx context.Context, pdfFile, outFile, format string) error {
	docs, err := e.Extract(ctx, pdfFile)
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []Document{}
	}
	return export.WriteDocuments(docs, outFile, format, "", e.logger)
}

// ConvertPDFToCSV converts a PDF file to CSV using the built-in layout. The
// file is checked with the PDF validator before extraction.
func ConvertPDFToCSV(pdfFile, csvFile string) error {
	e, err := NewExtractor(Options{})
	if err != nil {
		return err
	}
	e.parser.SetValidation(true)
	return e.parser.ConvertToCSV(pdfFile, csvFile)
}

// ConvertPDFToXLSX converts a PDF file to XLSX using the built-in layout.
func ConvertPDFToXLSX(pdfFile, xlsxFile string) error {
	e, err := NewExtractor(Options{})
	if err != nil {
		return err
	}
	return e.Convert(context.Background(), pdfFile, xlsxFile, "xlsx")
}
