package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "amount without digits",
			err: &ParseError{
				Parser: "PDF",
				Field:  "summa",
				Value:  "Сумма",
				Err:    ErrNoNumericContent,
			},
			expected: "PDF: failed to parse summa='Сумма': no numeric content",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				Parser: "PDF",
				Field:  "summa",
				Value:  "",
				Err:    errors.New("empty amount"),
			},
			expected: "PDF: failed to parse summa='': empty amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Parser: "PDF", Field: "summa", Value: "x", Err: ErrNoNumericContent}

	assert.Equal(t, ErrNoNumericContent, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, ErrNoNumericContent))
}

func TestStructuralEvidenceError(t *testing.T) {
	err := &StructuralEvidenceError{Page: 3, Missing: []string{"inn", "bik"}}

	assert.Equal(t, "page 3: structural evidence missing: inn, bik", err.Error())
	assert.True(t, errors.Is(err, ErrStructuralEvidenceMissing))

	wrapped := fmt.Errorf("processing: %w", err)
	var target *StructuralEvidenceError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 3, target.Page)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "template.yaml", Reason: "rectangle payer has no left anchor"}
	assert.Equal(t, "validation failed for template.yaml: rectangle payer has no left anchor", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "without snippet",
			err: &InvalidFormatError{
				FilePath:       "/path/to/file.pdf",
				ExpectedFormat: "PDF",
				Msg:            "file is not a valid PDF",
			},
			expected: "invalid format in file '/path/to/file.pdf': file is not a valid PDF. Expected: PDF",
		},
		{
			name: "with snippet",
			err: &InvalidFormatError{
				FilePath:             "/path/to/file.pdf",
				ExpectedFormat:       "PDF",
				ActualContentSnippet: "hello",
				Msg:                  "missing header",
			},
			expected: "invalid format in file '/path/to/file.pdf': missing header. Expected: PDF. Content snippet: 'hello'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDataExtractionError(t *testing.T) {
	cause := errors.New("broken content stream")
	err := &DataExtractionError{FilePath: "a.pdf", FieldName: "page 2", Reason: "cannot read page", Err: cause}

	assert.Equal(t, "data extraction failed in file 'a.pdf' for field 'page 2': cannot read page: broken content stream", err.Error())
	assert.True(t, errors.Is(err, cause))

	plain := &DataExtractionError{FilePath: "a.pdf", FieldName: "page 2", Reason: "page is empty"}
	assert.Equal(t, "data extraction failed in file 'a.pdf' for field 'page 2': page is empty", plain.Error())
}

func TestIsAmountParseError(t *testing.T) {
	assert.True(t, IsAmountParseError(fmt.Errorf("page 1: %w", &ParseError{Field: "summa", Err: ErrNoNumericContent})))
	assert.False(t, IsAmountParseError(&ParseError{Field: "number"}))
	assert.False(t, IsAmountParseError(errors.New("other")))
}
