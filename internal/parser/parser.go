package parser

import (
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"
)

// DocumentParser extracts payment documents from one input file.
// Pages that do not carry a recognizable document are skipped; the returned
// slice may be empty without an error.
type DocumentParser interface {
	ProcessFile(filePath string) ([]models.PaymentDocument, error)
}

// Validator checks whether a file can be handled before it is parsed.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// CSVConverter converts an input file straight to CSV.
type CSVConverter interface {
	ConvertToCSV(inputFile, outputFile string) error
}

// LoggerConfigurable is implemented by components whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is the complete parser surface used by the CLI.
type FullParser interface {
	DocumentParser
	Validator
	CSVConverter
	LoggerConfigurable
}
