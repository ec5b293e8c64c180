// Package export writes extracted payment documents to spreadsheet files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/pp-parser/internal/common"
	"fjacquet/pp-parser/internal/fileutils"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "Documents"

// columnWidths sets readable widths for the wide text columns, keyed by header.
var columnWidths = map[string]float64{
	"payer_name":          36,
	"recipient_name":      36,
	"payer_bank_name":     30,
	"recipient_bank_name": 30,
	"purpose":             60,
	"file_path":           48,
	"unique_identifier":   48,
}

// WriteRowsXLSX writes rows as a workbook with a header line to w.
// Summa is stored as a number so spreadsheet sums work; all other cells are text.
func WriteRowsXLSX(rows []models.DocumentRow, sheet string, w io.Writer) error {
	if sheet == "" {
		sheet = DefaultSheetName
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range models.RowHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header %s: %w", h, err)
		}
		if width, ok := columnWidths[h]; ok {
			col, _ := excelize.ColumnNumberToName(i + 1)
			_ = f.SetColWidth(sheet, col, col, width)
		}
	}

	summaCol := indexOf(models.RowHeaders, "summa")
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create amount style: %w", err)
	}
	for r, row := range rows {
		for c, v := range row.Values() {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if c == summaCol && v != "" {
				if amount, err := decimal.NewFromString(v); err == nil {
					if err := f.SetCellValue(sheet, cell, amount.InexactFloat64()); err != nil {
						return fmt.Errorf("write cell %s: %w", cell, err)
					}
					_ = f.SetCellStyle(sheet, cell, cell, amountStyle)
					continue
				}
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// WriteDocumentsToXLSX writes docs to an XLSX file, creating its directory if needed.
func WriteDocumentsToXLSX(docs []models.PaymentDocument, xlsxFile, sheet string, logger logging.Logger) error {
	if docs == nil {
		return fmt.Errorf("cannot write nil documents to XLSX")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger = logger.WithField(logging.FieldFile, xlsxFile)

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(xlsxFile)); err != nil {
		return err
	}

	file, err := os.Create(xlsxFile) // #nosec G304 -- output path comes from the CLI
	if err != nil {
		return fmt.Errorf("error creating XLSX file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close XLSX file")
		}
	}()

	if err := WriteRowsXLSX(models.ToRows(docs), sheet, file); err != nil {
		return err
	}

	logger.Info("Successfully wrote documents to XLSX file", logging.F(logging.FieldCount, len(docs)))
	return nil
}

// ReadRowsXLSX reads the rows of the first sheet written by WriteRowsXLSX.
func ReadRowsXLSX(r io.Reader) ([]models.DocumentRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	grid, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("xlsx has no header row")
	}

	rows := make([]models.DocumentRow, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		rows = append(rows, models.RowFromValues(cells))
	}
	return rows, nil
}

// WriteDocuments writes docs in the given format ("csv" or "xlsx").
// An empty format is taken from the file extension.
func WriteDocuments(docs []models.PaymentDocument, outputFile, format, sheet string, logger logging.Logger) error {
	if format == "" {
		format = FormatFromPath(outputFile)
	}
	switch format {
	case "xlsx":
		return WriteDocumentsToXLSX(docs, outputFile, sheet, logger)
	case "csv":
		return common.WriteDocumentsToCSV(docs, outputFile, logger)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// FormatFromPath returns "xlsx" for .xlsx files and "csv" otherwise.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return "xlsx"
	}
	return "csv"
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
