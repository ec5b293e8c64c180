package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentDocument is the structured record extracted from one payment-order page.
//
// Dates are kept exactly as printed (dd.mm.yyyy); parsing them is left to the
// consumers that need time values. UniqueIdentifier is not set by the extractor,
// it is computed by the persistence layer.
type PaymentDocument struct {
	Payer         Entity `json:"payer" yaml:"payer"`
	Recipient     Entity `json:"recipient" yaml:"recipient"`
	PayerBank     Bank   `json:"payer_bank" yaml:"payer_bank"`
	RecipientBank Bank   `json:"recipient_bank" yaml:"recipient_bank"`

	Summa         decimal.NullDecimal `json:"summa" yaml:"summa"`
	Number        string              `json:"number" yaml:"number"`
	AdmissionDate string              `json:"admission_date" yaml:"admission_date"`
	DebitedDate   string              `json:"debited_date" yaml:"debited_date"`
	Purpose       string              `json:"purpose" yaml:"purpose"`

	FilePath         string `json:"file_path" yaml:"file_path"`
	UniqueIdentifier string `json:"unique_identifier,omitempty" yaml:"unique_identifier,omitempty"`
}

// NewPaymentDocument creates an empty document bound to its source file
func NewPaymentDocument(filePath string) *PaymentDocument {
	return &PaymentDocument{FilePath: filePath}
}

// SetSumma records the extracted amount
func (d *PaymentDocument) SetSumma(amount decimal.Decimal) {
	d.Summa = decimal.NullDecimal{Decimal: amount, Valid: true}
}

// Normalize removes line breaks and abbreviates the legal form in every entity
// attribute and in the purpose. It is safe to call more than once.
func (d *PaymentDocument) Normalize() {
	d.Payer.normalize()
	d.Recipient.normalize()
	d.PayerBank.normalize()
	d.RecipientBank.normalize()
	d.Purpose = NormalizeText(d.Purpose)
}

// String returns a short human-readable description of the document
func (d *PaymentDocument) String() string {
	summa := ""
	if d.Summa.Valid {
		summa = d.Summa.Decimal.StringFixed(2)
	}
	return fmt.Sprintf("ПП №%s от %s %s -> %s %s", d.Number, d.AdmissionDate, d.Payer.Name, d.Recipient.Name, summa)
}

// DocumentRow is the flat, tabular form of a PaymentDocument used for CSV/XLSX
// export and as the input of the persistence layer.
type DocumentRow struct {
	Number               string `csv:"number"`
	AdmissionDate        string `csv:"admission_date"`
	DebitedDate          string `csv:"debited_date"`
	PayerName            string `csv:"payer_name"`
	PayerINN             string `csv:"payer_inn"`
	PayerKPP             string `csv:"payer_kpp"`
	PayerAccount         string `csv:"payer_account"`
	RecipientName        string `csv:"recipient_name"`
	RecipientINN         string `csv:"recipient_inn"`
	RecipientKPP         string `csv:"recipient_kpp"`
	RecipientAccount     string `csv:"recipient_account"`
	Summa                string `csv:"summa"`
	PayerBankName        string `csv:"payer_bank_name"`
	PayerBankBIK         string `csv:"payer_bank_bik"`
	PayerBankAccount     string `csv:"payer_bank_account"`
	RecipientBankName    string `csv:"recipient_bank_name"`
	RecipientBankBIK     string `csv:"recipient_bank_bik"`
	RecipientBankAccount string `csv:"recipient_bank_account"`
	Purpose              string `csv:"purpose"`
	FilePath             string `csv:"file_path"`
	UniqueIdentifier     string `csv:"unique_identifier"`
}

// RowHeaders lists the column names of DocumentRow in export order.
var RowHeaders = []string{
	"number", "admission_date", "debited_date",
	"payer_name", "payer_inn", "payer_kpp", "payer_account",
	"recipient_name", "recipient_inn", "recipient_kpp", "recipient_account",
	"summa",
	"payer_bank_name", "payer_bank_bik", "payer_bank_account",
	"recipient_bank_name", "recipient_bank_bik", "recipient_bank_account",
	"purpose", "file_path", "unique_identifier",
}

// ToRow flattens the document
func (d *PaymentDocument) ToRow() DocumentRow {
	row := DocumentRow{
		Number:               d.Number,
		AdmissionDate:        d.AdmissionDate,
		DebitedDate:          d.DebitedDate,
		PayerName:            d.Payer.Name,
		PayerINN:             d.Payer.INN,
		PayerKPP:             d.Payer.KPP,
		PayerAccount:         d.Payer.Account,
		RecipientName:        d.Recipient.Name,
		RecipientINN:         d.Recipient.INN,
		RecipientKPP:         d.Recipient.KPP,
		RecipientAccount:     d.Recipient.Account,
		PayerBankName:        d.PayerBank.Name,
		PayerBankBIK:         d.PayerBank.BIK,
		PayerBankAccount:     d.PayerBank.Account,
		RecipientBankName:    d.RecipientBank.Name,
		RecipientBankBIK:     d.RecipientBank.BIK,
		RecipientBankAccount: d.RecipientBank.Account,
		Purpose:              d.Purpose,
		FilePath:             d.FilePath,
		UniqueIdentifier:     d.UniqueIdentifier,
	}
	if d.Summa.Valid {
		row.Summa = d.Summa.Decimal.StringFixed(2)
	}
	return row
}

// Values returns the row cells in RowHeaders order.
func (r DocumentRow) Values() []string {
	return []string{
		r.Number, r.AdmissionDate, r.DebitedDate,
		r.PayerName, r.PayerINN, r.PayerKPP, r.PayerAccount,
		r.RecipientName, r.RecipientINN, r.RecipientKPP, r.RecipientAccount,
		r.Summa,
		r.PayerBankName, r.PayerBankBIK, r.PayerBankAccount,
		r.RecipientBankName, r.RecipientBankBIK, r.RecipientBankAccount,
		r.Purpose, r.FilePath, r.UniqueIdentifier,
	}
}

// ToRows flattens a slice of documents
func ToRows(docs []PaymentDocument) []DocumentRow {
	rows := make([]DocumentRow, 0, len(docs))
	for i := range docs {
		rows = append(rows, docs[i].ToRow())
	}
	return rows
}

// RowFromValues builds a row from cells in RowHeaders order. Missing trailing
// cells are left empty.
func RowFromValues(cells []string) DocumentRow {
	v := make([]string, len(RowHeaders))
	copy(v, cells)
	return DocumentRow{
		Number:               v[0],
		AdmissionDate:        v[1],
		DebitedDate:          v[2],
		PayerName:            v[3],
		PayerINN:             v[4],
		PayerKPP:             v[5],
		PayerAccount:         v[6],
		RecipientName:        v[7],
		RecipientINN:         v[8],
		RecipientKPP:         v[9],
		RecipientAccount:     v[10],
		Summa:                v[11],
		PayerBankName:        v[12],
		PayerBankBIK:         v[13],
		PayerBankAccount:     v[14],
		RecipientBankName:    v[15],
		RecipientBankBIK:     v[16],
		RecipientBankAccount: v[17],
		Purpose:              v[18],
		FilePath:             v[19],
		UniqueIdentifier:     v[20],
	}
}
