package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentDocumentToRow(t *testing.T) {
	doc := NewPaymentDocument("input/pp-45.pdf")
	doc.Payer = Entity{Name: "ООО Ромашка", INN: "7701234567", KPP: "770101001", Account: "40702810900000012345"}
	doc.Recipient = Entity{Name: "ООО Вектор", INN: "7702345678", Account: "40702810500000054321"}
	doc.PayerBank = Bank{Name: "ПАО СБЕРБАНК", BIK: "044525225", Account: "30101810400000000225"}
	doc.RecipientBank = Bank{Name: "АО АЛЬФА-БАНК", BIK: "044525593", Account: "30101810200000000593"}
	doc.Number = "45"
	doc.AdmissionDate = "01.02.2024"
	doc.DebitedDate = "02.02.2024"
	doc.Purpose = "Оплата по счету 15"
	doc.SetSumma(decimal.RequireFromString("1234.5"))

	row := doc.ToRow()

	assert.Equal(t, "45", row.Number)
	assert.Equal(t, "1234.50", row.Summa)
	assert.Equal(t, "ООО Ромашка", row.PayerName)
	assert.Equal(t, "770101001", row.PayerKPP)
	assert.Equal(t, "", row.RecipientKPP)
	assert.Equal(t, "044525593", row.RecipientBankBIK)
	assert.Equal(t, "input/pp-45.pdf", row.FilePath)

	values := row.Values()
	require.Len(t, values, len(RowHeaders))
	assert.Equal(t, "45", values[0])
	assert.Equal(t, "1234.50", values[11])
	assert.Equal(t, "input/pp-45.pdf", values[19])
}

func TestPaymentDocumentToRowWithoutSumma(t *testing.T) {
	doc := NewPaymentDocument("a.pdf")
	row := doc.ToRow()
	assert.Equal(t, "", row.Summa)
	assert.Equal(t, "a.pdf", row.FilePath)
}

func TestToRows(t *testing.T) {
	docs := []PaymentDocument{{Number: "1"}, {Number: "2"}}
	rows := ToRows(docs)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1].Number)
	assert.Empty(t, ToRows(nil))
}

func TestRectangle(t *testing.T) {
	r := Rectangle{Left: 10, Top: 20, Right: 110, Bottom: 40}
	assert.True(t, r.Contains(10, 20, 110, 40))
	assert.True(t, r.Contains(50, 25, 60, 35))
	assert.False(t, r.Contains(5, 25, 60, 35))
	assert.False(t, r.Contains(50, 25, 60, 41))
	assert.False(t, r.IsEmpty())
	assert.True(t, Rectangle{Left: 10, Right: 10, Top: 0, Bottom: 5}.IsEmpty())
	assert.Equal(t, "(10.00, 20.00, 110.00, 40.00)", r.String())
}

func TestRowFromValues(t *testing.T) {
	doc := NewPaymentDocument("input/pp-7.pdf")
	doc.Number = "7"
	doc.Payer.Name = "ООО Ромашка"
	doc.RecipientBank.Account = "30101810145250000974"
	row := doc.ToRow()

	assert.Equal(t, row, RowFromValues(row.Values()))

	short := RowFromValues([]string{"8", "01.02.2024"})
	assert.Equal(t, "8", short.Number)
	assert.Equal(t, "01.02.2024", short.AdmissionDate)
	assert.Empty(t, short.UniqueIdentifier)
}
