// Package textutils provides text extraction and manipulation utilities.
package textutils

import (
	"regexp"
	"strings"

	"fjacquet/pp-parser/internal/models"
	"fjacquet/pp-parser/internal/parsererror"

	"github.com/shopspring/decimal"
)

var (
	innPattern = regexp.MustCompile(`ИНН (\d+)`)
	kppPattern = regexp.MustCompile(`КПП (\d+)`)

	innSegment = regexp.MustCompile(`ИНН \d+`)
	kppSegment = regexp.MustCompile(`КПП \d+`)

	nonAmountChars = regexp.MustCompile(`[^\d.]`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// ParseEntity splits a payer/recipient text block into name, INN and KPP.
//
// The name is whatever follows the last "ИНН <digits>" segment, and then whatever
// follows the last "КПП <digits>" segment when a KPP is present. Text printed
// before the tax identifiers is dropped. A dangling "КПП" label without digits is
// removed. The account is taken as given.
func ParseEntity(text, account string) models.Entity {
	entity := models.Entity{Account: account}

	if m := innPattern.FindStringSubmatch(text); m != nil {
		entity.INN = m[1]
	}
	if m := kppPattern.FindStringSubmatch(text); m != nil {
		entity.KPP = m[1]
	}

	name := text
	if entity.INN != "" {
		name = lastPart(innSegment.Split(name, -1))
	}
	if entity.KPP != "" {
		name = lastPart(kppSegment.Split(name, -1))
	} else {
		name = strings.ReplaceAll(name, "КПП", "")
	}
	entity.Name = strings.TrimSpace(name)

	return entity
}

func lastPart(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// ParseAmount converts a printed amount such as "1 234-56" into a decimal.
// The template prints the decimal separator as a dash, so dashes become dots
// before every character other than digits and dots is dropped.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := nonAmountChars.ReplaceAllString(strings.ReplaceAll(text, "-", "."), "")
	if cleaned == "" || strings.Trim(cleaned, ".") == "" {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "PDF",
			Field:  "summa",
			Value:  text,
			Err:    parsererror.ErrNoNumericContent,
		}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "PDF",
			Field:  "summa",
			Value:  text,
			Err:    err,
		}
	}
	return amount, nil
}

// ParseNumber keeps only the digits of a document number. The result may be empty.
func ParseNumber(text string) string {
	return nonDigits.ReplaceAllString(text, "")
}
