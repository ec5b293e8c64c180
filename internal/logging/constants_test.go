package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	for name, value := range map[string]string{
		"FieldFile":       FieldFile,
		"FieldPage":       FieldPage,
		"FieldRectangle":  FieldRectangle,
		"FieldCount":      FieldCount,
		"FieldDelimiter":  FieldDelimiter,
		"FieldInputFile":  FieldInputFile,
		"FieldOutputFile": FieldOutputFile,
	} {
		if value == "" {
			t.Errorf("%s constant should not be empty", name)
		}
	}
}
