package layout

import (
	"fmt"
	"os"

	"fjacquet/pp-parser/internal/models"
	"fjacquet/pp-parser/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// Edge selects one coordinate of an anchor word's bounding box.
type Edge string

const (
	EdgeX0     Edge = "x0"
	EdgeX1     Edge = "x1"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

func (e Edge) of(w models.PositionedWord) (float64, bool) {
	switch e {
	case EdgeX0:
		return w.X0, true
	case EdgeX1:
		return w.X1, true
	case EdgeTop:
		return w.Top, true
	case EdgeBottom:
		return w.Bottom, true
	}
	return 0, false
}

// Side defines one side of a rectangle as an anchor coordinate plus a fixed offset.
// Index picks the n-th word of an append category; assign categories use index 0.
type Side struct {
	Anchor Category `yaml:"anchor"`
	Index  int      `yaml:"index,omitempty"`
	Edge   Edge     `yaml:"edge"`
	Offset float64  `yaml:"offset"`
}

func (s Side) String() string {
	return fmt.Sprintf("%s[%d].%s%+g", s.Anchor, s.Index, s.Edge, s.Offset)
}

// RectSpec describes how to derive one named field rectangle.
type RectSpec struct {
	Name   string `yaml:"name"`
	Left   Side   `yaml:"left"`
	Right  Side   `yaml:"right"`
	Top    Side   `yaml:"top"`
	Bottom Side   `yaml:"bottom"`
}

// Requirement is the minimum number of words a category must hold before any
// rectangle is computed.
type Requirement struct {
	Category Category `yaml:"category"`
	Min      int      `yaml:"min"`
}

// Template is the complete layout schema of one document form: which words are
// anchors, how much evidence is required, and where every field sits relative to
// the anchors. The offsets are fitted to a single form and carry no meaning beyond it.
type Template struct {
	Name         string        `yaml:"name"`
	Keywords     []KeywordRule `yaml:"keywords"`
	Requirements []Requirement `yaml:"requirements"`
	Rectangles   []RectSpec    `yaml:"rectangles"`
}

// Field rectangle names of the standard payment order form.
const (
	RectPayer                = "payer"
	RectRecipient            = "recipient"
	RectAdmissionDate        = "admission_date"
	RectSumma                = "summa"
	RectPaymentNumber        = "payment_number"
	RectPurpose              = "purpose"
	RectPayerBank            = "payer_bank"
	RectRecipientBank        = "recipient_bank"
	RectDebitedDate          = "debited_date"
	RectPayerBankBIK         = "payer_bank_bik"
	RectPayerBankAccount     = "payer_bank_account"
	RectRecipientBankBIK     = "recipient_bank_bik"
	RectRecipientBankAccount = "recipient_bank_account"
	RectPayerAccount         = "payer_account"
	RectRecipientAccount     = "recipient_account"
)

func side(c Category, i int, e Edge, off float64) Side {
	return Side{Anchor: c, Index: i, Edge: e, Offset: off}
}

// DefaultTemplate returns the layout of the standard bank payment order form.
func DefaultTemplate() *Template {
	const (
		payer    = CategoryPayer
		recip    = CategoryRecipient
		adm      = CategoryAdmissionDate
		summa    = CategorySumma
		number   = CategoryNumber
		purpose  = CategoryPurpose
		payerBnk = CategoryPayerBank
		recipBnk = CategoryRecipientBank
		debited  = CategoryDebitedDate
		inn      = CategoryINN
		bik      = CategoryBIK
	)

	return &Template{
		Name:     "payment-order",
		Keywords: DefaultKeywordRules(),
		Requirements: []Requirement{
			{Category: inn, Min: 2},
			{Category: payer, Min: 1},
			{Category: recip, Min: 1},
			{Category: bik, Min: 2},
			{Category: adm, Min: 1},
			{Category: summa, Min: 2},
			{Category: number, Min: 1},
			{Category: purpose, Min: 1},
			{Category: payerBnk, Min: 1},
			{Category: recipBnk, Min: 1},
			{Category: debited, Min: 1},
		},
		Rectangles: []RectSpec{
			{Name: RectPayer,
				Left: side(payer, 0, EdgeX0, -10), Right: side(bik, 0, EdgeX0, -3),
				Top: side(inn, 0, EdgeTop, -3), Bottom: side(payer, 0, EdgeBottom, -10)},
			{Name: RectRecipient,
				Left: side(recip, 0, EdgeX0, -10), Right: side(bik, 0, EdgeX0, -3),
				Top: side(inn, 1, EdgeTop, -3), Bottom: side(recip, 0, EdgeBottom, -10)},
			{Name: RectAdmissionDate,
				Left: side(adm, 0, EdgeX0, 0), Right: side(adm, 0, EdgeX1, 40),
				Top: side(adm, 0, EdgeTop, -20), Bottom: side(adm, 0, EdgeBottom, -10)},
			{Name: RectSumma,
				Left: side(summa, 1, EdgeX0, 35), Right: side(summa, 1, EdgeX1, 100),
				Top: side(summa, 1, EdgeTop, -5), Bottom: side(summa, 1, EdgeBottom, 20)},
			{Name: RectPaymentNumber,
				Left: side(number, 0, EdgeX0, 55), Right: side(number, 0, EdgeX1, 70),
				Top: side(number, 0, EdgeTop, -5), Bottom: side(number, 0, EdgeBottom, 5)},
			{Name: RectPurpose,
				Left: side(purpose, 0, EdgeX0, 0), Right: side(purpose, 0, EdgeX1, 480),
				Top: side(recip, 0, EdgeBottom, 10), Bottom: side(purpose, 0, EdgeBottom, -15)},
			{Name: RectPayerBank,
				Left: side(payerBnk, 0, EdgeX0, -30), Right: side(bik, 0, EdgeX0, -3),
				Top: side(payer, 0, EdgeBottom, 0), Bottom: side(payerBnk, 0, EdgeBottom, -10)},
			{Name: RectRecipientBank,
				Left: side(recipBnk, 0, EdgeX0, -30), Right: side(bik, 0, EdgeX0, -3),
				Top: side(payerBnk, 0, EdgeBottom, 0), Bottom: side(recipBnk, 0, EdgeBottom, -10)},
			{Name: RectDebitedDate,
				Left: side(debited, 0, EdgeX0, 0), Right: side(debited, 0, EdgeX1, 40),
				Top: side(debited, 0, EdgeTop, -20), Bottom: side(debited, 0, EdgeBottom, -10)},
			{Name: RectPayerBankBIK,
				Left: side(bik, 0, EdgeX0, 35), Right: side(bik, 0, EdgeX1, 100),
				Top: side(payer, 0, EdgeTop, 0), Bottom: side(bik, 0, EdgeBottom, 5)},
			{Name: RectPayerBankAccount,
				Left: side(bik, 0, EdgeX0, 35), Right: side(bik, 0, EdgeX1, 155),
				Top: side(bik, 0, EdgeBottom, 0), Bottom: side(bik, 1, EdgeTop, -10)},
			{Name: RectRecipientBankBIK,
				Left: side(bik, 1, EdgeX0, 35), Right: side(bik, 1, EdgeX1, 100),
				Top: side(bik, 1, EdgeTop, -5), Bottom: side(bik, 1, EdgeBottom, 5)},
			{Name: RectRecipientBankAccount,
				Left: side(bik, 1, EdgeX0, 35), Right: side(bik, 1, EdgeX1, 155),
				Top: side(bik, 1, EdgeTop, 10), Bottom: side(bik, 1, EdgeBottom, 30)},
			{Name: RectPayerAccount,
				Left: side(bik, 0, EdgeX0, 35), Right: side(bik, 0, EdgeX1, 155),
				Top: side(payer, 0, EdgeTop, -40), Bottom: side(payer, 0, EdgeBottom, 0)},
			{Name: RectRecipientAccount,
				Left: side(bik, 1, EdgeX0, 35), Right: side(bik, 1, EdgeX1, 155),
				Top: side(bik, 1, EdgeTop, 41), Bottom: side(bik, 1, EdgeBottom, 61)},
		},
	}
}

// LoadTemplate reads a template from a YAML file and validates it.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading template file: %w", err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("error parsing template file %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return nil, &parsererror.ValidationError{FilePath: path, Reason: err.Error()}
	}
	return &t, nil
}

// Validate checks that the template is self-consistent: every keyword has a
// category and a mode, and every rectangle side refers to a known category and edge.
func (t *Template) Validate() error {
	if len(t.Keywords) == 0 {
		return fmt.Errorf("template %q has no keywords", t.Name)
	}

	modes := make(map[Category]Mode, len(t.Keywords))
	for i, k := range t.Keywords {
		if k.Keyword == "" || k.Category == "" {
			return fmt.Errorf("keyword rule %d is incomplete", i)
		}
		if k.Mode != ModeAssign && k.Mode != ModeAppend {
			return fmt.Errorf("keyword %q has invalid mode %q", k.Keyword, k.Mode)
		}
		if m, ok := modes[k.Category]; ok && m != k.Mode {
			return fmt.Errorf("category %q is used with both %s and %s modes", k.Category, m, k.Mode)
		}
		modes[k.Category] = k.Mode
	}

	for _, r := range t.Requirements {
		if _, ok := modes[r.Category]; !ok {
			return fmt.Errorf("requirement on unknown category %q", r.Category)
		}
	}

	if len(t.Rectangles) == 0 {
		return fmt.Errorf("template %q has no rectangles", t.Name)
	}
	seen := make(map[string]bool, len(t.Rectangles))
	for _, rect := range t.Rectangles {
		if rect.Name == "" {
			return fmt.Errorf("rectangle without a name")
		}
		if seen[rect.Name] {
			return fmt.Errorf("duplicate rectangle %q", rect.Name)
		}
		seen[rect.Name] = true

		for _, s := range []Side{rect.Left, rect.Right, rect.Top, rect.Bottom} {
			mode, ok := modes[s.Anchor]
			if !ok {
				return fmt.Errorf("rectangle %q: unknown anchor category %q", rect.Name, s.Anchor)
			}
			if _, ok := s.Edge.of(models.PositionedWord{}); !ok {
				return fmt.Errorf("rectangle %q: invalid edge %q", rect.Name, s.Edge)
			}
			if s.Index < 0 || (mode == ModeAssign && s.Index != 0) {
				return fmt.Errorf("rectangle %q: invalid index %d for %s category %q", rect.Name, s.Index, mode, s.Anchor)
			}
		}
	}
	return nil
}
