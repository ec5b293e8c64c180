package logging

// Standard field names used in structured log output.
const (
	FieldFile       = "file_path"
	FieldPage       = "page"
	FieldRectangle  = "rectangle"
	FieldField      = "field"
	FieldValue      = "value"
	FieldMissing    = "missing"
	FieldTemplate   = "template"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldWorkers    = "workers"
	FieldDelimiter  = "delimiter"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldIdentifier = "unique_identifier"
)
