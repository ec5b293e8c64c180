package pdfparser

import (
	"strings"

	"fjacquet/pp-parser/internal/layout"
)

// ExtractRegionText returns the trimmed text inside the named rectangle.
// A rectangle that was not resolved, or a region without text, yields ok=false.
func ExtractRegionText(page Page, rects layout.Rects, name string) (string, bool) {
	rect, ok := rects.Get(name)
	if !ok {
		return "", false
	}
	text := strings.TrimSpace(page.TextWithin(rect))
	if text == "" {
		return "", false
	}
	return text, true
}
