// Package common provides shared functionality across different parsers.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/pp-parser/internal/fileutils"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/gocarina/gocsv"
)

var (
	delimMu   sync.RWMutex
	delimiter rune = ','
)

// SetDelimiter sets the field delimiter used to read and write CSV files.
func SetDelimiter(delim rune) {
	delimMu.Lock()
	defer delimMu.Unlock()
	delimiter = delim
}

// Delimiter returns the current CSV field delimiter.
func Delimiter() rune {
	delimMu.RLock()
	defer delimMu.RUnlock()
	return delimiter
}

func ensureLogger(logger logging.Logger) logging.Logger {
	if logger == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return logger
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger = ensureLogger(logger).WithField(logging.FieldFile, filePath)
	logger.Info("Reading CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter()

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteRowsCSV writes document rows with a header line to w.
func WriteRowsCSV(rows []models.DocumentRow, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter()

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteDocumentsToCSV writes payment documents to a CSV file in the standard row layout.
// The directory of csvFile is created when missing.
func WriteDocumentsToCSV(docs []models.PaymentDocument, csvFile string, logger logging.Logger) error {
	if docs == nil {
		return fmt.Errorf("cannot write nil documents to CSV")
	}
	logger = ensureLogger(logger).WithFields(
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldCount, len(docs)),
		logging.F(logging.FieldDelimiter, string(Delimiter())),
	)
	logger.Info("Writing documents to CSV file")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return err
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteRowsCSV(models.ToRows(docs), file); err != nil {
		logger.WithError(err).Error("Failed to marshal documents to CSV")
		return err
	}

	logger.Info("Successfully wrote documents to CSV file")
	return nil
}

// GeneralizedConvertToCSV combines optional validation, parsing and writing to CSV.
func GeneralizedConvertToCSV(
	inputFile string,
	outputFile string,
	parseFunc func(string) ([]models.PaymentDocument, error),
	validateFunc func(string) (bool, error),
	logger logging.Logger,
) error {
	logger = ensureLogger(logger).WithFields(
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldOutputFile, outputFile),
	)
	logger.Info("Converting file to CSV")

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	if validateFunc != nil {
		isValid, err := validateFunc(inputFile)
		if err != nil {
			return fmt.Errorf("error validating file format: %w", err)
		}
		if !isValid {
			return fmt.Errorf("invalid file format: %s", inputFile)
		}
	}

	docs, err := parseFunc(inputFile)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}
	if docs == nil {
		docs = []models.PaymentDocument{}
	}

	if err := WriteDocumentsToCSV(docs, outputFile, logger); err != nil {
		return fmt.Errorf("error writing documents to CSV: %w", err)
	}

	logger.Info("Successfully converted file to CSV", logging.F(logging.FieldCount, len(docs)))
	return nil
}
