// Package pdfparser extracts payment documents from PDF payment orders by
// locating anchor words on each page and reading the text of the field
// regions derived from them.
package pdfparser

import "fjacquet/pp-parser/internal/models"

// Page is one page of an opened document.
type Page interface {
	// Words returns the positioned words of the page in reading order.
	Words() []models.PositionedWord
	// TextWithin returns the text of every glyph lying entirely inside rect,
	// one line per text row. It returns "" when the region holds no text.
	TextWithin(rect models.Rectangle) string
}

// Document is an opened PDF file. Pages are numbered from 1.
type Document interface {
	NumPages() int
	Page(n int) (Page, error)
	Close() error
}

// DocumentOpener opens PDF files for extraction.
type DocumentOpener interface {
	Open(filePath string) (Document, error)
}
