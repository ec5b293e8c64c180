package pdfparser

import (
	"errors"
	"fmt"
)

func g(s string, x0, x1, top, bottom float64) glyph {
	return glyph{s: s, x0: x0, x1: x1, top: top, bottom: bottom}
}

// orderGlyphs is a full payment order laid out around the default template anchors.
func orderGlyphs() []glyph {
	return []glyph{
		g("Поступ.", 40, 90, 40, 50),
		g("01.02.2024", 45, 95, 25, 35),
		g("Списано", 150, 200, 40, 50),
		g("02.02.2024", 155, 205, 25, 35),
		g("ПОРУЧЕНИЕ", 100, 180, 50, 60),
		g("45", 200, 215, 50, 60),

		g("Сумма", 20, 60, 70, 80),
		g("прописью", 65, 120, 70, 80),

		g("ИНН", 50, 70, 100, 110),
		g("7701234567", 75, 140, 100, 110),
		g("КПП", 145, 165, 100, 110),
		g("770101001", 170, 230, 100, 110),
		g("Сумма", 300, 340, 100, 110),
		g("15000-00", 345, 400, 100, 110),
		g("ООО", 20, 45, 120, 130),
		g("Ромашка", 50, 100, 120, 130),
		g("40702810900000012345", 340, 470, 120, 130),
		g("Плательщик", 20, 80, 150, 160),

		g("БИК", 300, 320, 160, 170),
		g("044525225", 340, 400, 160, 170),
		g("ПАО", 20, 50, 170, 180),
		g("СБЕРБАНК", 55, 130, 170, 180),
		g("30101810400000000225", 340, 470, 185, 195),
		g("плательщика", 40, 110, 190, 200),

		g("АО", 20, 35, 202, 211),
		g("БАНК", 40, 80, 202, 211),
		g("БИК", 300, 320, 210, 220),
		g("044525974", 340, 400, 210, 220),
		g("получателя", 40, 110, 212, 222),
		g("ИНН", 50, 70, 220, 230),
		g("500100732259", 75, 150, 220, 230),
		g("30101810145250000974", 340, 470, 230, 240),
		g("ИП", 20, 35, 240, 250),
		g("Иванов", 40, 90, 240, 250),
		g("Получатель", 20, 80, 260, 270),
		g("40802810500000000001", 340, 470, 260, 270),

		g("Оплата", 20, 60, 300, 310),
		g("по", 65, 75, 300, 310),
		g("счету", 80, 115, 300, 310),
		g("12", 120, 130, 300, 310),
		g("НДС", 20, 45, 315, 325),
		g("не", 50, 60, 315, 325),
		g("облагается", 65, 120, 315, 325),
		g("Назначение", 20, 90, 350, 360),
	}
}

// replaceGlyph returns glyphs with every glyph whose text is from replaced by to.
// An empty to removes the glyph.
func replaceGlyph(glyphs []glyph, from, to string) []glyph {
	out := make([]glyph, 0, len(glyphs))
	for _, gl := range glyphs {
		if gl.s == from {
			if to == "" {
				continue
			}
			gl.s = to
		}
		out = append(out, gl)
	}
	return out
}

func orderPage(glyphs []glyph) *glyphPage {
	return newGlyphPage(glyphs, DefaultLineTolerance, DefaultWordGap)
}

// fakeDocument serves preset pages; a nil entry makes Page fail.
type fakeDocument struct {
	pages  []Page
	closed bool
}

func (d *fakeDocument) NumPages() int { return len(d.pages) }

func (d *fakeDocument) Page(n int) (Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("page %d out of range", n)
	}
	if d.pages[n-1] == nil {
		return nil, errors.New("broken page")
	}
	return d.pages[n-1], nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type fakeOpener struct {
	doc  *fakeDocument
	err  error
	path string
}

func (o *fakeOpener) Open(filePath string) (Document, error) {
	o.path = filePath
	if o.err != nil {
		return nil, o.err
	}
	return o.doc, nil
}
