// Package batch processes folders of payment-order PDFs with a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/pp-parser/internal/dateutils"
	"fjacquet/pp-parser/internal/fileutils"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is used when no worker count is configured.
const DefaultWorkers = 4

// FileParser extracts the documents of one file.
type FileParser interface {
	ProcessFileContext(ctx context.Context, filePath string) ([]models.PaymentDocument, error)
}

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format(dateutils.DateLayoutISO),
		dr.End.Format(dateutils.DateLayoutISO))
}

// Include widens the range so that it contains t.
func (dr DateRange) Include(t time.Time) DateRange {
	if dr.Start.IsZero() || t.Before(dr.Start) {
		dr.Start = t
	}
	if dr.End.IsZero() || t.After(dr.End) {
		dr.End = t
	}
	return dr
}

// Result is the outcome of a batch run.
type Result struct {
	// Documents holds the extracted documents, grouped by file in input order.
	Documents []models.PaymentDocument
	Files     int
	Failed    []string
	DateRange DateRange
}

// Processor runs a FileParser over many files concurrently.
type Processor struct {
	parser  FileParser
	logger  logging.Logger
	workers int
}

// NewProcessor creates a processor. A non-positive worker count selects DefaultWorkers.
func NewProcessor(parser FileParser, logger logging.Logger, workers int) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Processor{parser: parser, logger: logger, workers: workers}
}

// ProcessDirectory processes every PDF file directly inside dir.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) (*Result, error) {
	files, err := fileutils.ListPDFFiles(dir)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Found PDF files",
		logging.F(logging.FieldInputFile, dir),
		logging.F(logging.FieldCount, len(files)))
	return p.ProcessFiles(ctx, files)
}

// ProcessFiles processes files with at most the configured number of workers.
// A file that fails is logged and recorded in Result.Failed; only a cancelled
// context aborts the run.
func (p *Processor) ProcessFiles(ctx context.Context, files []string) (*Result, error) {
	start := time.Now()
	perFile := make([][]models.PaymentDocument, len(files))
	failed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logger := p.logger.WithField(logging.FieldFile, file)
			logger.Debug("Processing file")

			docs, err := p.parser.ProcessFileContext(gctx, file)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.WithError(err).Error("Failed to process file")
				failed[i] = true
				return nil
			}
			perFile[i] = docs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Files: len(files)}
	for i, docs := range perFile {
		if failed[i] {
			res.Failed = append(res.Failed, files[i])
		}
		res.Documents = append(res.Documents, docs...)
	}
	res.DateRange = CalculateDateRange(res.Documents)
	p.detectAndLogDuplicates(res.Documents)

	p.logger.Info("Batch processing finished",
		logging.F(logging.FieldCount, len(res.Documents)),
		logging.F("files", len(files)),
		logging.F("failed", len(res.Failed)),
		logging.F(logging.FieldWorkers, p.workers),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return res, nil
}

// CalculateDateRange returns the range of admission dates. Unparseable or absent
// dates are ignored.
func CalculateDateRange(docs []models.PaymentDocument) DateRange {
	var dr DateRange
	for i := range docs {
		t, err := dateutils.ParseRussianDate(docs[i].AdmissionDate)
		if err != nil {
			continue
		}
		dr = dr.Include(t)
	}
	return dr
}

// detectAndLogDuplicates warns about documents printed more than once in the
// batch (same number, admission date and payer). All of them are kept.
// Documents missing any of the three are never reported.
func (p *Processor) detectAndLogDuplicates(docs []models.PaymentDocument) {
	seen := make(map[string]string, len(docs))
	for i := range docs {
		d := &docs[i]
		if d.Number == "" || d.AdmissionDate == "" || !d.Payer.HasName() {
			continue
		}
		key := strings.Join([]string{d.Number, d.AdmissionDate, strings.ToLower(d.Payer.Name)}, "|")
		if first, ok := seen[key]; ok {
			p.logger.Warn("Potential duplicate payment order",
				logging.F("number", d.Number),
				logging.F("admission_date", d.AdmissionDate),
				logging.F(logging.FieldFile, d.FilePath),
				logging.F("first_file", first))
			continue
		}
		seen[key] = d.FilePath
	}
}

// GenerateOutputFilename creates a default output name for a batch:
// documents_{start}_{end}.{ext}, or documents.{ext} without dates.
func GenerateOutputFilename(dr DateRange, format string) string {
	if format == "" {
		format = "csv"
	}
	if s := dr.String(); s != "" {
		return fmt.Sprintf("documents_%s.%s", s, format)
	}
	return "documents." + format
}

// OutputPath places the default output name inside dir.
func OutputPath(dir string, dr DateRange, format string) string {
	return filepath.Join(dir, GenerateOutputFilename(dr, format))
}
