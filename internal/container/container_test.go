package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pp-parser/internal/common"
	"fjacquet/pp-parser/internal/config"
	"fjacquet/pp-parser/internal/layout"
	"fjacquet/pp-parser/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.PDF.LineTolerance = 3
	cfg.PDF.WordGap = 3
	cfg.Export.Format = config.FormatCSV
	cfg.Batch.Workers = 2
	return cfg
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(testConfig())
	require.NoError(t, err)

	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetParser())
	assert.NotNil(t, c.GetProcessor())
	assert.Equal(t, layout.DefaultTemplate().Name, c.GetTemplate().Name)
	assert.Same(t, c.GetTemplate(), c.GetParser().Template())
	assert.Equal(t, 2, c.GetConfig().Batch.Workers)
	assert.NoError(t, c.Close())
}

func TestNewContainerNilArguments(t *testing.T) {
	_, err := NewContainer(nil)
	assert.ErrorContains(t, err, "configuration cannot be nil")

	_, err = NewContainerWithLogger(testConfig(), nil)
	assert.ErrorContains(t, err, "logger cannot be nil")
}

func TestNewContainerSetsDelimiter(t *testing.T) {
	defer common.SetDelimiter(',')

	cfg := testConfig()
	cfg.CSV.Delimiter = ";"
	_, err := NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, ';', common.Delimiter())
}

func TestNewContainerTemplateFile(t *testing.T) {
	tmpl := layout.DefaultTemplate()
	tmpl.Name = "custom"
	data, err := yaml.Marshal(tmpl)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg := testConfig()
	cfg.PDF.TemplateFile = path
	c, err := NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, "custom", c.GetTemplate().Name)

	cfg.PDF.TemplateFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewContainerWithLogger(cfg, &logging.MockLogger{})
	assert.ErrorContains(t, err, "failed to load layout template")
}

func TestGetStoreWithoutDSN(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(), &logging.MockLogger{})
	require.NoError(t, err)

	_, err = c.GetStore(context.Background())
	assert.ErrorContains(t, err, "database DSN is not configured")

	_, err = c.GetLoader(context.Background())
	assert.Error(t, err)
}

func TestGetStoreWithDatabase(t *testing.T) {
	dsn := os.Getenv("PP_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("PP_TEST_DATABASE_DSN not set")
	}

	cfg := testConfig()
	cfg.Database.DSN = dsn
	c, err := NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)

	first, err := c.GetStore(context.Background())
	require.NoError(t, err)
	second, err := c.GetStore(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	loader, err := c.GetLoader(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loader)
	assert.NoError(t, c.Close())
}
