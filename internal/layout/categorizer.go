// Package layout infers the position of payment-order fields from the 2-D
// placement of recognized anchor words on a page.
package layout

import (
	"strings"

	"fjacquet/pp-parser/internal/models"
)

// Category names a semantic slot that anchor words are sorted into.
type Category string

const (
	CategoryPayer         Category = "payer"
	CategoryRecipient     Category = "recipient"
	CategoryPayerBank     Category = "payer_bank"
	CategoryRecipientBank Category = "recipient_bank"
	CategoryINN           Category = "inn"
	CategoryBIK           Category = "bik"
	CategorySumma         Category = "summa"
	CategoryAdmissionDate Category = "admission_date"
	CategoryNumber        Category = "number"
	CategoryPurpose       Category = "purpose"
	CategoryDebitedDate   Category = "debited_date"
)

// Mode says how a matched word is stored in its category.
type Mode string

const (
	// ModeAssign keeps only the last matching word.
	ModeAssign Mode = "assign"
	// ModeAppend keeps every matching word in page order.
	ModeAppend Mode = "append"
)

// KeywordRule maps a case-insensitive keyword to a category.
type KeywordRule struct {
	Keyword  string   `yaml:"keyword"`
	Category Category `yaml:"category"`
	Mode     Mode     `yaml:"mode"`
}

// DefaultKeywordRules returns the ordered keyword table of the standard payment order form.
// Order matters: the first matching rule wins.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{Keyword: "ИНН", Category: CategoryINN, Mode: ModeAppend},
		{Keyword: "Плательщик", Category: CategoryPayer, Mode: ModeAssign},
		{Keyword: "Получатель", Category: CategoryRecipient, Mode: ModeAssign},
		{Keyword: "БИК", Category: CategoryBIK, Mode: ModeAppend},
		{Keyword: "Поступ.", Category: CategoryAdmissionDate, Mode: ModeAssign},
		{Keyword: "Сумма", Category: CategorySumma, Mode: ModeAppend},
		{Keyword: "ПОРУЧЕНИЕ", Category: CategoryNumber, Mode: ModeAssign},
		{Keyword: "Назначение", Category: CategoryPurpose, Mode: ModeAssign},
		{Keyword: "плательщика", Category: CategoryPayerBank, Mode: ModeAssign},
		{Keyword: "получателя", Category: CategoryRecipientBank, Mode: ModeAssign},
		{Keyword: "списано", Category: CategoryDebitedDate, Mode: ModeAssign},
	}
}

// Bucket holds the anchor words of one page grouped by category.
// Every category named by the rule table is present, possibly empty.
type Bucket struct {
	words map[Category][]models.PositionedWord
}

// NewBucket creates an empty bucket with a slot for every category of rules.
func NewBucket(rules []KeywordRule) Bucket {
	b := Bucket{words: make(map[Category][]models.PositionedWord, len(rules))}
	for _, r := range rules {
		if _, ok := b.words[r.Category]; !ok {
			b.words[r.Category] = []models.PositionedWord{}
		}
	}
	return b
}

// Has reports whether the category is known to the bucket.
func (b Bucket) Has(c Category) bool {
	_, ok := b.words[c]
	return ok
}

// Count returns the number of words stored under a category.
func (b Bucket) Count(c Category) int {
	return len(b.words[c])
}

// At returns the i-th word of a category in page order.
func (b Bucket) At(c Category, i int) (models.PositionedWord, bool) {
	ws := b.words[c]
	if i < 0 || i >= len(ws) {
		return models.PositionedWord{}, false
	}
	return ws[i], true
}

// Words returns a copy of the words stored under a category.
func (b Bucket) Words(c Category) []models.PositionedWord {
	return append([]models.PositionedWord(nil), b.words[c]...)
}

func (b Bucket) store(r KeywordRule, w models.PositionedWord) {
	switch r.Mode {
	case ModeAppend:
		b.words[r.Category] = append(b.words[r.Category], w)
	default:
		b.words[r.Category] = []models.PositionedWord{w}
	}
}

// Categorize sorts the words of a page into a Bucket.
//
// Each word is first compared for exact (case-insensitive) equality against every
// keyword in rule order; only when nothing matches exactly is a prefix match tried,
// again in rule order. This keeps a short keyword's prefix from shadowing a longer
// keyword that the word equals, e.g. "плательщика" vs "Плательщик".
// Words that match no rule are ignored.
func Categorize(words []models.PositionedWord, rules []KeywordRule) Bucket {
	b := NewBucket(rules)

	lowered := make([]string, len(rules))
	for i, r := range rules {
		lowered[i] = strings.ToLower(r.Keyword)
	}

	for _, w := range words {
		if i := matchRule(strings.ToLower(w.Text), lowered); i >= 0 {
			b.store(rules[i], w)
		}
	}
	return b
}

func matchRule(text string, keywords []string) int {
	for i, k := range keywords {
		if text == k {
			return i
		}
	}
	for i, k := range keywords {
		if strings.HasPrefix(text, k) {
			return i
		}
	}
	return -1
}
