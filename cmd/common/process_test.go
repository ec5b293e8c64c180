package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pp-parser/internal/config"
	"fjacquet/pp-parser/internal/container"
	"fjacquet/pp-parser/internal/logging"
	"fjacquet/pp-parser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	ok  bool
	err error
}

func (s stubValidator) ValidateFormat(string) (bool, error) { return s.ok, s.err }

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		output     string
		configured string
		want       string
		wantErr    bool
	}{
		{"flag wins", "XLSX", "out.csv", "csv", "xlsx", false},
		{"extension", "", "out.xlsx", "csv", "xlsx", false},
		{"csv extension", "", "out.csv", "xlsx", "csv", false},
		{"configured default", "", "out", "xlsx", "xlsx", false},
		{"fallback", "", "", "", "csv", false},
		{"bad flag", "json", "out.csv", "csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFormat(tt.flag, tt.output, tt.configured)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateInput(t *testing.T) {
	log := &logging.MockLogger{}

	assert.NoError(t, ValidateInput(stubValidator{ok: true}, "a.pdf", log))
	assert.ErrorContains(t, ValidateInput(stubValidator{}, "a.pdf", log), "not a valid PDF")
	assert.ErrorContains(t, ValidateInput(stubValidator{err: errors.New("io")}, "a.pdf", log), "error validating file")
}

func TestWriteOutput(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Batch.Workers = 1
	c, err := container.NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "docs.csv")
	require.NoError(t, WriteOutput(c, nil, out, config.FormatCSV))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "number,admission_date")

	xlsx := filepath.Join(t.TempDir(), "docs.xlsx")
	require.NoError(t, WriteOutput(c, []models.PaymentDocument{*models.NewPaymentDocument("a.pdf")}, xlsx, config.FormatXLSX))
	assert.FileExists(t, xlsx)
}
