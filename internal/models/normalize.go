package models

import (
	"regexp"
	"strings"
)

// LLCAbbreviation is the standard abbreviation of the limited liability company legal form.
const LLCAbbreviation = "ООО"

var llcPhrase = regexp.MustCompile(`(?i)общество\s+с\s+ограниченной\s*ответственностью`)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// NormalizeText removes embedded line breaks and collapses the long legal-form phrase
// to its abbreviation. Line breaks go first so that a phrase split across lines
// is collapsed in the same pass, which keeps the function idempotent.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	s = lineBreaks.Replace(s)
	return llcPhrase.ReplaceAllString(s, LLCAbbreviation)
}
