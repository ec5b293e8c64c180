package pdfparser

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// defaultPageHeight is used when a page carries no usable MediaBox (A4 portrait).
const defaultPageHeight = 842.0

// LedongthucOpener opens PDF files with github.com/ledongthuc/pdf and rebuilds
// words from the positioned glyphs of each page.
type LedongthucOpener struct {
	LineTolerance float64
	WordGap       float64
}

// NewLedongthucOpener creates an opener with the given grouping tolerances.
// Non-positive values fall back to the defaults.
func NewLedongthucOpener(lineTolerance, wordGap float64) *LedongthucOpener {
	if lineTolerance <= 0 {
		lineTolerance = DefaultLineTolerance
	}
	if wordGap <= 0 {
		wordGap = DefaultWordGap
	}
	return &LedongthucOpener{LineTolerance: lineTolerance, WordGap: wordGap}
}

// Open implements DocumentOpener.
func (o *LedongthucOpener) Open(filePath string) (Document, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &ledongthucDocument{file: f, reader: reader, opener: o}, nil
}

type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
	opener *LedongthucOpener
}

func (d *ledongthucDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) Page(n int) (Page, error) {
	if n < 1 || n > d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range 1..%d", n, d.reader.NumPage())
	}
	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d is empty", n)
	}

	texts, err := pageTexts(page)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}

	height := mediaBoxHeight(page.V)
	glyphs := make([]glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, glyphFromText(t, height))
	}
	return newGlyphPage(glyphs, d.opener.LineTolerance, d.opener.WordGap), nil
}

func (d *ledongthucDocument) Close() error {
	return d.file.Close()
}

// pageTexts reads the glyph runs of a page. The content stream interpreter
// panics on some malformed streams, so the panic is turned into an error.
func pageTexts(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unreadable content stream: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// glyphFromText converts a glyph run to top-left coordinates. Y is the baseline
// measured from the bottom of the page.
func glyphFromText(t pdf.Text, pageHeight float64) glyph {
	return glyph{
		s:      t.S,
		x0:     t.X,
		x1:     t.X + t.W,
		top:    pageHeight - (t.Y + t.FontSize),
		bottom: pageHeight - t.Y,
	}
}

// mediaBoxHeight returns the height of the page MediaBox, following the Parent
// chain for inherited boxes.
func mediaBoxHeight(v pdf.Value) float64 {
	for depth := 0; depth < 32 && v.Kind() == pdf.Dict; depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
