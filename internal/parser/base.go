// Package parser provides the base parser functionality and common interfaces.
package parser

import "fjacquet/pp-parser/internal/logging"

// BaseParser holds the logger shared by parser implementations and
// implements the LoggerConfigurable interface for them.
//
// Parsers embed it to share logger handling:
//
//	type MyParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser that logs through logger.
// A nil logger is replaced by an info-level text logrus adapter.
//
// Parameters:
//   - logger: The logger used for page and file processing messages, may be nil
//
// Returns:
//   - BaseParser: A value ready to be embedded in a concrete parser
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger implements the LoggerConfigurable interface.
// A nil logger is ignored and the current one is kept.
//
// Parameters:
//   - logger: The replacement logger
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the logger the parser currently writes to.
//
// Returns:
//   - logging.Logger: The current logger, never nil once built with NewBaseParser
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
