// Package parsererror defines the typed errors returned while extracting payment orders.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStructuralEvidenceMissing is wrapped by StructuralEvidenceError so callers can
// test for a skipped page with errors.Is.
var ErrStructuralEvidenceMissing = errors.New("structural evidence missing")

// ErrNoNumericContent is returned when an amount holds no digits after cleaning.
var ErrNoNumericContent = errors.New("no numeric content")

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructuralEvidenceError is returned when a page lacks the anchor words the
// layout template needs. The page is skipped; it never yields a partial record.
type StructuralEvidenceError struct {
	Page    int
	Missing []string
}

func (e *StructuralEvidenceError) Error() string {
	return fmt.Sprintf("page %d: %v: %s", e.Page, ErrStructuralEvidenceMissing, strings.Join(e.Missing, ", "))
}

func (e *StructuralEvidenceError) Unwrap() error {
	return ErrStructuralEvidenceMissing
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents an error where a page or field could not be read
// from a file, even if the file format itself might be valid.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s: %v",
			e.FilePath, e.FieldName, e.Reason, e.Err)
	}
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}

// IsAmountParseError reports whether err is a failure to parse the payment amount.
func IsAmountParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Field == "summa"
}
