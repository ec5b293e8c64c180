package pdfparser

import (
	"sort"
	"strings"

	"fjacquet/pp-parser/internal/models"
)

// Default grouping tolerances, in points.
const (
	DefaultLineTolerance = 3.0
	DefaultWordGap       = 3.0
)

// glyph is one drawn text run with a top-left origin bounding box.
type glyph struct {
	s      string
	x0, x1 float64
	top    float64
	bottom float64
}

func (g glyph) blank() bool {
	return strings.TrimSpace(g.s) == ""
}

// glyphPage serves Words and TextWithin from the glyphs of one page.
type glyphPage struct {
	glyphs        []glyph
	lineTolerance float64
	wordGap       float64
}

func newGlyphPage(glyphs []glyph, lineTolerance, wordGap float64) *glyphPage {
	return &glyphPage{glyphs: glyphs, lineTolerance: lineTolerance, wordGap: wordGap}
}

func (p *glyphPage) Words() []models.PositionedWord {
	return groupWords(p.glyphs, p.lineTolerance, p.wordGap)
}

func (p *glyphPage) TextWithin(rect models.Rectangle) string {
	var inside []glyph
	for _, g := range p.glyphs {
		if rect.Contains(g.x0, g.top, g.x1, g.bottom) {
			inside = append(inside, g)
		}
	}
	if len(inside) == 0 {
		return ""
	}

	lines := groupLines(inside, p.lineTolerance)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, joinLine(line, p.wordGap))
	}
	return strings.Join(out, "\n")
}

// groupLines clusters glyphs into rows: a glyph whose top lies within tol of the
// first glyph of the current row joins it. Rows come out top to bottom and each
// row is ordered left to right.
func groupLines(glyphs []glyph, tol float64) [][]glyph {
	sorted := append([]glyph(nil), glyphs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].top < sorted[j].top
	})

	var (
		lines   [][]glyph
		lineTop float64
	)
	for _, g := range sorted {
		if len(lines) == 0 || g.top-lineTop > tol {
			lines = append(lines, []glyph{g})
			lineTop = g.top
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], g)
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].x0 < line[j].x0
		})
	}
	return lines
}

// joinLine concatenates the glyphs of one row, inserting a single space where the
// horizontal gap exceeds gap.
func joinLine(line []glyph, gap float64) string {
	var b strings.Builder
	for i, g := range line {
		if i > 0 {
			prev := line[i-1]
			if g.x0-prev.x1 > gap && !prev.blank() && !g.blank() {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.s)
	}
	return b.String()
}

// groupWords splits every row into words at blank glyphs and at gaps wider than gap.
func groupWords(glyphs []glyph, tol, gap float64) []models.PositionedWord {
	var words []models.PositionedWord
	for _, line := range groupLines(glyphs, tol) {
		var (
			cur  models.PositionedWord
			open bool
		)
		flush := func() {
			if open {
				words = append(words, cur)
				open = false
			}
		}

		for _, g := range line {
			if g.blank() {
				flush()
				continue
			}
			if open && g.x0-cur.X1 > gap {
				flush()
			}
			if !open {
				cur = models.PositionedWord{Text: g.s, X0: g.x0, X1: g.x1, Top: g.top, Bottom: g.bottom}
				open = true
				continue
			}
			cur.Text += g.s
			if g.x1 > cur.X1 {
				cur.X1 = g.x1
			}
			if g.top < cur.Top {
				cur.Top = g.top
			}
			if g.bottom > cur.Bottom {
				cur.Bottom = g.bottom
			}
		}
		flush()
	}
	return words
}
