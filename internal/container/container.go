// Package container provides dependency injection for the pp-parser application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/pp-parser/internal/batch"
	"fjacquet/pp-parser/internal/common"
	"fjacquet/pp-parser/internal/config"
	"fjacquet/pp-parser/internal/layout"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/pdfparser"
	"fjacquet/pp-parser/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation apart from the database connection,
// which is opened on first use so that commands without persistence never
// need a reachable database.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	template  *layout.Template
	parser    *pdfparser.Parser
	processor *batch.Processor

	documentStore *store.DocumentStore
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	if cfg.CSV.Delimiter != "" {
		common.SetDelimiter(cfg.Delimiter())
	}

	tmpl := layout.DefaultTemplate()
	if cfg.PDF.TemplateFile != "" {
		loaded, err := layout.LoadTemplate(cfg.PDF.TemplateFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout template: %w", err)
		}
		tmpl = loaded
	}

	opener := pdfparser.NewLedongthucOpener(cfg.PDF.LineTolerance, cfg.PDF.WordGap)
	pdfParser := pdfparser.NewParser(logger, tmpl, opener)
	pdfParser.SetValidation(cfg.PDF.Validate)

	processor := batch.NewProcessor(pdfParser, logger, cfg.Batch.Workers)

	logger.Info("Container initialized successfully",
		logging.F(logging.FieldTemplate, tmpl.Name),
		logging.F(logging.FieldWorkers, cfg.Batch.Workers))

	return &Container{
		logger:    logger,
		config:    cfg,
		template:  tmpl,
		parser:    pdfParser,
		processor: processor,
	}, nil
}

// GetParser returns the payment-order parser.
func (c *Container) GetParser() *pdfparser.Parser {
	return c.parser
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetTemplate returns the layout template in use.
func (c *Container) GetTemplate() *layout.Template {
	return c.template
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore opens the database on first use and initializes its schema.
func (c *Container) GetStore(ctx context.Context) (*store.DocumentStore, error) {
	if c.documentStore != nil {
		return c.documentStore, nil
	}
	if c.config.Database.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured (set PP_DATABASE_DSN or DATABASE_URL)")
	}

	s, err := store.Open(c.config.Database.DSN, c.logger)
	if err != nil {
		return nil, err
	}
	if err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	c.documentStore = s
	return s, nil
}

// GetLoader returns a loader saving into the configured database.
func (c *Container) GetLoader(ctx context.Context) (*store.Loader, error) {
	s, err := c.GetStore(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewLoader(s, c.logger, c.config.Database.StoreFileContent), nil
}

// Close releases the database connection if one was opened.
func (c *Container) Close() error {
	if c.documentStore != nil {
		if err := c.documentStore.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		c.documentStore = nil
	}
	c.logger.Info("Container closed")
	return nil
}
