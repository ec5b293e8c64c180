package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocuments() []models.PaymentDocument {
	first := models.NewPaymentDocument("input/pp-45.pdf")
	first.Number = "45"
	first.AdmissionDate = "01.02.2024"
	first.Payer = models.Entity{Name: "ООО Ромашка", INN: "7701234567", KPP: "770101001", Account: "40702810900000012345"}
	first.Recipient = models.Entity{Name: "ИП Иванов", INN: "500100732259"}
	first.SetSumma(decimal.RequireFromString("1234.5"))
	first.Purpose = "Оплата по счету 12"

	second := models.NewPaymentDocument("input/pp-46.pdf")
	second.Number = "46"

	return []models.PaymentDocument{*first, *second}
}

func TestWriteRowsXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRowsXLSX(models.ToRows(sampleDocuments()), "", &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	header, err := f.GetCellValue(DefaultSheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "number", header)

	summa, err := f.GetCellValue(DefaultSheetName, "L2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", summa)

	empty, err := f.GetCellValue(DefaultSheetName, "L3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReadRowsXLSXRoundTrip(t *testing.T) {
	docs := sampleDocuments()
	var buf bytes.Buffer
	require.NoError(t, WriteRowsXLSX(models.ToRows(docs), "Orders", &buf))

	rows, err := ReadRowsXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "45", rows[0].Number)
	assert.Equal(t, "ООО Ромашка", rows[0].PayerName)
	assert.Equal(t, "770101001", rows[0].PayerKPP)
	assert.Equal(t, "input/pp-45.pdf", rows[0].FilePath)
	assert.True(t, decimal.RequireFromString("1234.50").Equal(decimal.RequireFromString(rows[0].Summa)))

	assert.Equal(t, "46", rows[1].Number)
	assert.Empty(t, rows[1].Summa)
}

func TestWriteDocumentsToXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "documents.xlsx")
	logger := &logging.MockLogger{}

	require.NoError(t, WriteDocumentsToXLSX(sampleDocuments(), out, "", logger))
	assert.FileExists(t, out)
	assert.True(t, logger.HasEntry("INFO", "Successfully wrote documents to XLSX file"))

	assert.Error(t, WriteDocumentsToXLSX(nil, out, "", logger))
}

func TestWriteDocuments(t *testing.T) {
	dir := t.TempDir()
	docs := sampleDocuments()

	csvOut := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteDocuments(docs, csvOut, "", "", &logging.MockLogger{}))
	data, err := os.ReadFile(csvOut)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1234.50")

	xlsxOut := filepath.Join(dir, "out.XLSX")
	require.NoError(t, WriteDocuments(docs, xlsxOut, "", "", &logging.MockLogger{}))
	f, err := excelize.OpenFile(xlsxOut)
	require.NoError(t, err)
	_ = f.Close()

	err = WriteDocuments(docs, filepath.Join(dir, "out.json"), "json", "", nil)
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "xlsx", FormatFromPath("a/b.xlsx"))
	assert.Equal(t, "xlsx", FormatFromPath("B.XLSX"))
	assert.Equal(t, "csv", FormatFromPath("b.csv"))
	assert.Equal(t, "csv", FormatFromPath("b"))
}
