// Package store persists payment documents in PostgreSQL through gorm.
package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fjacquet/pp-parser/internal/dateutils"
	"fjacquet/pp-parser/internal/models"

	"github.com/shopspring/decimal"
)

// Document is the persisted form of a payment document.
type Document struct {
	ID                   uint                `gorm:"primaryKey"`
	Number               *int                `gorm:"column:number"`
	NumberText           string              `gorm:"-"`
	AdmissionDate        *time.Time          `gorm:"column:admission_date;type:date"`
	DebitedDate          *time.Time          `gorm:"column:debited_date;type:date"`
	PayerName            string              `gorm:"column:payer_name;size:255"`
	PayerINN             string              `gorm:"column:payer_inn;size:255"`
	PayerKPP             string              `gorm:"column:payer_kpp;size:255"`
	PayerAccount         string              `gorm:"column:payer_account;size:255"`
	RecipientName        string              `gorm:"column:recipient_name;size:255"`
	RecipientINN         string              `gorm:"column:recipient_inn;size:255"`
	RecipientKPP         string              `gorm:"column:recipient_kpp;size:255"`
	RecipientAccount     string              `gorm:"column:recipient_account;size:255"`
	Summa                decimal.NullDecimal `gorm:"column:summa;type:decimal(10,2)"`
	PayerBankName        string              `gorm:"column:payer_bank_name;size:255"`
	PayerBankBIK         string              `gorm:"column:payer_bank_bik;size:255"`
	PayerBankAccount     string              `gorm:"column:payer_bank_account;size:255"`
	RecipientBankName    string              `gorm:"column:recipient_bank_name;size:255"`
	RecipientBankBIK     string              `gorm:"column:recipient_bank_bik;size:255"`
	RecipientBankAccount string              `gorm:"column:recipient_bank_account;size:255"`
	Purpose              string              `gorm:"column:purpose;type:text"`
	UniqueIdentifier     *string             `gorm:"column:unique_identifier;size:255;uniqueIndex"`
	FilePath             string              `gorm:"column:file_path;size:255"`
	FileContent          []byte              `gorm:"column:file_content"`
}

// TableName implements gorm's tabler interface.
func (Document) TableName() string {
	return "documents"
}

// NewDocumentFromRow converts an exported row into a persistable document.
// Empty number, dates and summa become NULL; malformed ones are errors.
func NewDocumentFromRow(row models.DocumentRow) (*Document, error) {
	doc := &Document{
		PayerName:            row.PayerName,
		PayerINN:             row.PayerINN,
		PayerKPP:             row.PayerKPP,
		PayerAccount:         row.PayerAccount,
		RecipientName:        row.RecipientName,
		RecipientINN:         row.RecipientINN,
		RecipientKPP:         row.RecipientKPP,
		RecipientAccount:     row.RecipientAccount,
		PayerBankName:        row.PayerBankName,
		PayerBankBIK:         row.PayerBankBIK,
		PayerBankAccount:     row.PayerBankAccount,
		RecipientBankName:    row.RecipientBankName,
		RecipientBankBIK:     row.RecipientBankBIK,
		RecipientBankAccount: row.RecipientBankAccount,
		Purpose:              row.Purpose,
		FilePath:             row.FilePath,
	}

	if n := strings.TrimSpace(row.Number); n != "" {
		v, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", row.Number, err)
		}
		doc.Number = &v
		doc.NumberText = n
	}

	var err error
	if doc.AdmissionDate, err = dateutils.ParseOptionalDate(row.AdmissionDate); err != nil {
		return nil, fmt.Errorf("invalid admission date: %w", err)
	}
	if doc.DebitedDate, err = dateutils.ParseOptionalDate(row.DebitedDate); err != nil {
		return nil, fmt.Errorf("invalid debited date: %w", err)
	}

	if s := strings.TrimSpace(row.Summa); s != "" {
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid summa %q: %w", row.Summa, err)
		}
		doc.Summa = decimal.NullDecimal{Decimal: amount, Valid: true}
	}

	return doc, nil
}

// NewDocument converts an extracted document into a persistable one.
func NewDocument(pd models.PaymentDocument) (*Document, error) {
	return NewDocumentFromRow(pd.ToRow())
}

// GenerateUniqueIdentifier sets UniqueIdentifier to
// "ПП №<number> от <dd.mm.yyyy> <payer>/<recipient>" when all four parts are
// known and clears it otherwise. The number is used as printed, leading zeros
// included; the integer column is for storage only.
func (d *Document) GenerateUniqueIdentifier() {
	if d.NumberText == "" || d.AdmissionDate == nil || d.PayerName == "" || d.RecipientName == "" {
		d.UniqueIdentifier = nil
		return
	}
	id := fmt.Sprintf("ПП №%s от %s %s/%s",
		d.NumberText, dateutils.ToRussianFormat(*d.AdmissionDate), d.PayerName, d.RecipientName)
	d.UniqueIdentifier = &id
}

// Identifier returns the unique identifier or "" when it is NULL.
func (d *Document) Identifier() string {
	if d.UniqueIdentifier == nil {
		return ""
	}
	return *d.UniqueIdentifier
}
