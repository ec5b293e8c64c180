package models

import "fmt"

// PositionedWord is one lexical token with its bounding box on a page.
// Coordinates are in points with the origin at the top-left corner of the page,
// so Top < Bottom for any non-degenerate word.
type PositionedWord struct {
	Text   string  `json:"text" yaml:"text"`
	X0     float64 `json:"x0" yaml:"x0"`
	X1     float64 `json:"x1" yaml:"x1"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Rectangle is an axis-aligned region of a page in the same coordinate space as PositionedWord.
type Rectangle struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Contains reports whether the box [x0,x1]x[top,bottom] lies entirely inside the rectangle.
func (r Rectangle) Contains(x0, top, x1, bottom float64) bool {
	return x0 >= r.Left && x1 <= r.Right && top >= r.Top && bottom <= r.Bottom
}

// IsEmpty returns true if the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// String returns the rectangle as "(left, top, right, bottom)".
func (r Rectangle) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", r.Left, r.Top, r.Right, r.Bottom)
}
