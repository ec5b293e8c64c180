package store

import (
	"context"
	"errors"

	"fjacquet/pp-parser/internal/fileutils"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"
)

// SaveStats summarizes one load.
type SaveStats struct {
	Saved      int
	Duplicates int
	Failed     int
}

// Loader converts rows to documents and saves them one by one.
type Loader struct {
	repo             Repository
	logger           logging.Logger
	storeFileContent bool
}

// NewLoader creates a loader. With storeFileContent the source PDF named by each
// row's file_path is stored alongside the record.
func NewLoader(repo Repository, logger logging.Logger, storeFileContent bool) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{repo: repo, logger: logger, storeFileContent: storeFileContent}
}

// SaveRows saves every row. A failing row is logged and skipped; only a
// cancelled context stops the load early.
func (l *Loader) SaveRows(ctx context.Context, rows []models.DocumentRow) (SaveStats, error) {
	var stats SaveStats
	l.logger.Info("Saving documents to database", logging.F(logging.FieldCount, len(rows)))

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		logger := l.logger.WithField(logging.FieldFile, row.FilePath)

		doc, err := NewDocumentFromRow(row)
		if err != nil {
			logger.WithError(err).Error("Invalid document row")
			stats.Failed++
			continue
		}
		doc.GenerateUniqueIdentifier()

		if l.storeFileContent && row.FilePath != "" {
			content, err := fileutils.ReadFile(row.FilePath)
			if err != nil {
				logger.WithError(err).Warn("Source file not stored")
			} else {
				doc.FileContent = content
			}
		}

		err = l.repo.Save(ctx, doc)
		switch {
		case errors.Is(err, ErrDuplicate):
			logger.Warn("Document already stored, skipping",
				logging.F(logging.FieldIdentifier, doc.Identifier()))
			stats.Duplicates++
		case err != nil:
			logger.WithError(err).Error("Failed to save document")
			stats.Failed++
		default:
			logger.Info("Document saved", logging.F(logging.FieldIdentifier, doc.Identifier()))
			stats.Saved++
		}
	}

	l.logger.Info("Finished saving documents",
		logging.F("saved", stats.Saved),
		logging.F("duplicates", stats.Duplicates),
		logging.F("failed", stats.Failed))
	return stats, nil
}

// SaveDocuments saves extracted documents.
func (l *Loader) SaveDocuments(ctx context.Context, docs []models.PaymentDocument) (SaveStats, error) {
	return l.SaveRows(ctx, models.ToRows(docs))
}
