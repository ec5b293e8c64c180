package layout

import (
	"fmt"
	"sort"

	"fjacquet/pp-parser/internal/models"
	"fjacquet/pp-parser/internal/parsererror"
)

// Rects maps rectangle names to their page coordinates.
type Rects map[string]models.Rectangle

// Get returns the named rectangle.
func (r Rects) Get(name string) (models.Rectangle, bool) {
	rect, ok := r[name]
	return rect, ok
}

// Names returns the rectangle names in lexical order.
func (r Rects) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Categorize sorts words using the template's keyword table.
func (t *Template) Categorize(words []models.PositionedWord) Bucket {
	return Categorize(words, t.Keywords)
}

// Resolve computes every rectangle of the template from the anchors in b.
//
// The requirements are checked first and all unmet ones are reported together in a
// *parsererror.StructuralEvidenceError. Either every rectangle is returned or none.
// The returned error carries no page number; the caller fills it in.
func (t *Template) Resolve(b Bucket) (Rects, error) {
	var missing []string
	for _, req := range t.Requirements {
		if n := b.Count(req.Category); n < req.Min {
			missing = append(missing, describeShortfall(req.Category, n, req.Min))
		}
	}
	if len(missing) > 0 {
		return nil, &parsererror.StructuralEvidenceError{Missing: missing}
	}

	rects := make(Rects, len(t.Rectangles))
	for _, spec := range t.Rectangles {
		rect, err := spec.resolve(b)
		if err != nil {
			return nil, err
		}
		rects[spec.Name] = rect
	}
	return rects, nil
}

func describeShortfall(c Category, have, need int) string {
	if need <= 1 {
		return string(c)
	}
	return fmt.Sprintf("%s (%d of %d)", c, have, need)
}

func (s RectSpec) resolve(b Bucket) (models.Rectangle, error) {
	var (
		r       models.Rectangle
		missing []string
	)
	for _, target := range []struct {
		side Side
		dst  *float64
	}{
		{s.Left, &r.Left},
		{s.Top, &r.Top},
		{s.Right, &r.Right},
		{s.Bottom, &r.Bottom},
	} {
		v, ok := target.side.value(b)
		if !ok {
			missing = append(missing, fmt.Sprintf("%s[%d]", target.side.Anchor, target.side.Index))
			continue
		}
		*target.dst = v
	}
	if len(missing) > 0 {
		return models.Rectangle{}, &parsererror.StructuralEvidenceError{Missing: missing}
	}
	return r, nil
}

func (s Side) value(b Bucket) (float64, bool) {
	w, ok := b.At(s.Anchor, s.Index)
	if !ok {
		return 0, false
	}
	v, ok := s.Edge.of(w)
	if !ok {
		return 0, false
	}
	return v + s.Offset, true
}
