package pdfparser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/pp-parser/internal/layout"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"
	"fjacquet/pp-parser/internal/parser"
	"fjacquet/pp-parser/internal/parsererror"
	"fjacquet/pp-parser/internal/textutils"
)

// Parser assembles PaymentDocuments from the pages of payment-order PDFs.
// It holds no per-page state and can serve concurrent callers.
type Parser struct {
	parser.BaseParser
	template *layout.Template
	opener   DocumentOpener
	validate bool
}

// NewParser creates a parser. A nil template selects layout.DefaultTemplate and a
// nil opener selects the ledongthuc-backed opener with default tolerances.
func NewParser(logger logging.Logger, template *layout.Template, opener DocumentOpener) *Parser {
	if template == nil {
		template = layout.DefaultTemplate()
	}
	if opener == nil {
		opener = NewLedongthucOpener(DefaultLineTolerance, DefaultWordGap)
	}
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		template:   template,
		opener:     opener,
	}
}

// SetValidation makes ConvertToCSV check the file structure with pdfcpu first.
func (p *Parser) SetValidation(enabled bool) {
	p.validate = enabled
}

// Template returns the layout template in use.
func (p *Parser) Template() *layout.Template {
	return p.template
}

// ProcessPage builds one document from a page.
//
// A page without the anchors the template requires yields a
// *parsererror.StructuralEvidenceError; an unreadable amount yields the
// *parsererror.ParseError from textutils.ParseAmount. In both cases no document
// is returned. Absent fields are left empty and are not errors.
func (p *Parser) ProcessPage(page Page, pageNum int, filePath string) (*models.PaymentDocument, error) {
	logger := p.GetLogger().WithFields(
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldPage, pageNum),
	)

	bucket := p.template.Categorize(page.Words())
	rects, err := p.template.Resolve(bucket)
	if err != nil {
		var seErr *parsererror.StructuralEvidenceError
		if errors.As(err, &seErr) {
			seErr.Page = pageNum
			logger.Info("Skipping page without payment order structure",
				logging.F(logging.FieldMissing, seErr.Missing))
		}
		return nil, err
	}

	read := func(name string) (string, bool) {
		text, ok := ExtractRegionText(page, rects, name)
		if ok {
			logger.Debug("Extracted region text",
				logging.F(logging.FieldRectangle, name),
				logging.F(logging.FieldValue, text))
		}
		return text, ok
	}

	doc := models.NewPaymentDocument(filePath)

	if text, ok := read(layout.RectPayer); ok {
		account, _ := read(layout.RectPayerAccount)
		doc.Payer = textutils.ParseEntity(text, account)
	}
	if text, ok := read(layout.RectRecipient); ok {
		account, _ := read(layout.RectRecipientAccount)
		doc.Recipient = textutils.ParseEntity(text, account)
	}

	if text, ok := read(layout.RectSumma); ok {
		amount, err := textutils.ParseAmount(text)
		if err != nil {
			logger.WithError(err).Error("Failed to parse payment amount",
				logging.F(logging.FieldField, "summa"),
				logging.F(logging.FieldValue, text))
			return nil, err
		}
		doc.SetSumma(amount)
	}

	if text, ok := read(layout.RectPaymentNumber); ok {
		doc.Number = textutils.ParseNumber(text)
	}
	if text, ok := read(layout.RectAdmissionDate); ok {
		doc.AdmissionDate = text
	}
	if text, ok := read(layout.RectDebitedDate); ok {
		doc.DebitedDate = text
	}
	if text, ok := read(layout.RectPurpose); ok {
		doc.Purpose = text
	}

	if name, ok := read(layout.RectPayerBank); ok {
		bik, _ := read(layout.RectPayerBankBIK)
		account, _ := read(layout.RectPayerBankAccount)
		doc.PayerBank = models.Bank{Name: name, BIK: bik, Account: account}
	}
	if name, ok := read(layout.RectRecipientBank); ok {
		bik, _ := read(layout.RectRecipientBankBIK)
		account, _ := read(layout.RectRecipientBankAccount)
		doc.RecipientBank = models.Bank{Name: name, BIK: bik, Account: account}
	}

	logger.Info("Extracted payment document",
		logging.F("number", doc.Number),
		logging.F("payer", doc.Payer.Name),
		logging.F("recipient", doc.Recipient.Name))
	return doc, nil
}

// ProcessFile extracts every payment document of a PDF file.
func (p *Parser) ProcessFile(filePath string) ([]models.PaymentDocument, error) {
	return p.ProcessFileContext(context.Background(), filePath)
}

// ProcessFileContext extracts every payment document of a PDF file, checking ctx
// between pages. Page failures are logged and the remaining pages are still
// processed. Every returned document is normalized.
func (p *Parser) ProcessFileContext(ctx context.Context, filePath string) ([]models.PaymentDocument, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, filePath)
	start := time.Now()

	doc, err := p.opener.Open(filePath)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close PDF file")
		}
	}()

	var docs []models.PaymentDocument
	for n := 1; n <= doc.NumPages(); n++ {
		if err := ctx.Err(); err != nil {
			return docs, err
		}

		page, err := doc.Page(n)
		if err != nil {
			logger.WithError(&parsererror.DataExtractionError{
				FilePath:  filePath,
				FieldName: fmt.Sprintf("page %d", n),
				Reason:    "page could not be read",
				Err:       err,
			}).Warn("Skipping unreadable page", logging.F(logging.FieldPage, n))
			continue
		}

		pd, err := p.ProcessPage(page, n, filePath)
		if err != nil {
			if !errors.Is(err, parsererror.ErrStructuralEvidenceMissing) {
				reason := "page assembly failed"
				if parsererror.IsAmountParseError(err) {
					reason = "unreadable amount"
				}
				logger.WithError(err).Warn("Page not processed",
					logging.F(logging.FieldPage, n),
					logging.F(logging.FieldReason, reason))
			}
			continue
		}
		pd.Normalize()
		docs = append(docs, *pd)
	}

	logger.Info("Processed PDF file",
		logging.F(logging.FieldCount, len(docs)),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return docs, nil
}
