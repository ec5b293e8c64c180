package common

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCSVRow represents a test CSV row for gocsv unmarshaling
type TestCSVRow struct {
	Name    string `csv:"Name"`
	Age     string `csv:"Age"`
	Country string `csv:"Country"`
}

func sampleDocuments() []models.PaymentDocument {
	doc := models.NewPaymentDocument("in/order-1.pdf")
	doc.Number = "45"
	doc.AdmissionDate = "01.02.2024"
	doc.DebitedDate = "02.02.2024"
	doc.Payer = models.Entity{Name: "ООО \"Ромашка\"", INN: "7701234567", KPP: "770101001", Account: "40702810900000012345"}
	doc.Recipient = models.Entity{Name: "ИП Иванов", INN: "500100732259", Account: "40802810500000000001"}
	doc.PayerBank = models.Bank{Name: "ПАО СБЕРБАНК", BIK: "044525225", Account: "30101810400000000225"}
	doc.Purpose = "Оплата по счету 12, в т.ч. НДС"
	doc.SetSumma(decimal.RequireFromString("1234.5"))
	return []models.PaymentDocument{*doc}
}

func TestReadCSVFile(t *testing.T) {
	csvContent := `Name,Age,Country
John Doe,30,USA
Jane Smith,25,Canada`

	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0600))

	rows, err := ReadCSVFile[TestCSVRow](path, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "John Doe", rows[0].Name)
	assert.Equal(t, "25", rows[1].Age)
	assert.Equal(t, "Canada", rows[1].Country)
}

func TestReadCSVFileMissing(t *testing.T) {
	logger := &logging.MockLogger{}
	_, err := ReadCSVFile[TestCSVRow](filepath.Join(t.TempDir(), "missing.csv"), logger)
	assert.Error(t, err)
	assert.True(t, logger.HasEntry("ERROR", "Failed to open CSV file"))
}

func TestWriteDocumentsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "documents.csv")

	require.NoError(t, WriteDocumentsToCSV(sampleDocuments(), path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(models.RowHeaders, ","), lines[0])
	assert.Contains(t, lines[1], "45,01.02.2024,02.02.2024")
	assert.Contains(t, lines[1], "1234.50")
	assert.Contains(t, lines[1], `"ООО ""Ромашка"""`)
	assert.Contains(t, lines[1], `"Оплата по счету 12, в т.ч. НДС"`)
}

func TestWriteDocumentsToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteDocumentsToCSV([]models.PaymentDocument{}, path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(models.RowHeaders, ","), strings.TrimSpace(string(data)))
}

func TestWriteDocumentsToCSVNil(t *testing.T) {
	err := WriteDocumentsToCSV(nil, filepath.Join(t.TempDir(), "nil.csv"), nil)
	assert.Error(t, err)
}

func TestCSVRoundTripWithDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	path := filepath.Join(t.TempDir(), "semicolon.csv")
	require.NoError(t, WriteDocumentsToCSV(sampleDocuments(), path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "number;admission_date;"))

	rows, err := ReadCSVFile[models.DocumentRow](path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sampleDocuments()[0].ToRow(), rows[0])
}

func TestWriteRowsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRowsCSV(models.ToRows(sampleDocuments()), &buf))
	assert.Contains(t, buf.String(), "in/order-1.pdf")
}

func TestGeneralizedConvertToCSV(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "order.pdf")
	output := filepath.Join(dir, "order.csv")
	require.NoError(t, os.WriteFile(input, []byte("%PDF-1.4"), 0600))

	parse := func(string) ([]models.PaymentDocument, error) { return sampleDocuments(), nil }
	valid := func(string) (bool, error) { return true, nil }

	require.NoError(t, GeneralizedConvertToCSV(input, output, parse, valid, nil))
	_, err := os.Stat(output)
	assert.NoError(t, err)

	t.Run("missing input", func(t *testing.T) {
		err := GeneralizedConvertToCSV(filepath.Join(dir, "none.pdf"), output, parse, nil, nil)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("invalid format", func(t *testing.T) {
		invalid := func(string) (bool, error) { return false, nil }
		err := GeneralizedConvertToCSV(input, output, parse, invalid, nil)
		assert.ErrorContains(t, err, "invalid file format")
	})

	t.Run("parse error", func(t *testing.T) {
		failing := func(string) ([]models.PaymentDocument, error) { return nil, errors.New("broken") }
		err := GeneralizedConvertToCSV(input, output, failing, nil, nil)
		assert.ErrorContains(t, err, "broken")
	})
}
