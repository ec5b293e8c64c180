package pdfparser

import (
	"sync"

	"fjacquet/pp-parser/internal/common"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/parser"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// ValidateFormat reports whether the file is a structurally readable PDF.
// A malformed file is reported as (false, nil).
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, filePath)
	logger.Info("Validating PDF format")

	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(filePath, conf); err != nil {
		logger.WithError(err).Error("PDF validation failed")
		return false, nil
	}
	return true, nil
}

// ConvertToCSV extracts the documents of inputFile and writes them to outputFile.
func (p *Parser) ConvertToCSV(inputFile, outputFile string) error {
	var validate func(string) (bool, error)
	if p.validate {
		validate = p.ValidateFormat
	}
	return common.GeneralizedConvertToCSV(inputFile, outputFile, p.ProcessFile, validate, p.GetLogger())
}

var _ parser.FullParser = (*Parser)(nil)
