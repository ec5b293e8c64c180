package store

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/pp-parser/internal/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrDuplicate is returned by Save when the unique identifier is already stored.
var ErrDuplicate = errors.New("document already stored")

// Repository is the persistence surface used by the loader.
type Repository interface {
	// Init creates or migrates the documents table. It must be called explicitly
	// before the first Save.
	Init(ctx context.Context) error
	Save(ctx context.Context, doc *Document) error
}

// DocumentStore is a gorm-backed Repository.
type DocumentStore struct {
	db     *gorm.DB
	logger logging.Logger
}

// Open connects to PostgreSQL. It does not touch the schema; call Init for that.
func Open(dsn string, logger logging.Logger) (*DocumentStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewDocumentStore(db, logger), nil
}

// NewDocumentStore wraps an existing gorm connection.
func NewDocumentStore(db *gorm.DB, logger logging.Logger) *DocumentStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &DocumentStore{db: db, logger: logger}
}

// Init creates the documents table and its unique index when missing.
func (s *DocumentStore) Init(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Document{}); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	s.logger.Info("Database schema ready")
	return nil
}

// Save inserts doc. A unique identifier conflict yields an error wrapping ErrDuplicate.
func (s *DocumentStore) Save(ctx context.Context, doc *Document) error {
	err := s.db.WithContext(ctx).Create(doc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicate, doc.Identifier())
	}
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.FilePath, err)
	}
	return nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Document{}).Count(&n).Error
	return n, err
}

// Close releases the underlying connection pool.
func (s *DocumentStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
