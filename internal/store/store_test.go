package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"fjacquet/pp-parser/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore connects to the database named by PP_TEST_DATABASE_DSN and
// skips the test when it is unset.
func openTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	dsn := os.Getenv("PP_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("PP_TEST_DATABASE_DSN not set")
	}

	s, err := Open(dsn, &logging.MockLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestOpenEmptyDSN(t *testing.T) {
	_, err := Open("", nil)
	assert.ErrorContains(t, err, "DSN is empty")
}

func TestDocumentStoreSave(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := sampleRow()
	row.PayerName = fmt.Sprintf("ООО Тест %d", time.Now().UnixNano())
	doc, err := NewDocumentFromRow(row)
	require.NoError(t, err)
	doc.GenerateUniqueIdentifier()

	before, err := s.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, doc))
	assert.NotZero(t, doc.ID)

	again, err := NewDocumentFromRow(row)
	require.NoError(t, err)
	again.GenerateUniqueIdentifier()
	err = s.Save(ctx, again)
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)

	after, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestDocumentStoreInitIsRepeatable(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Init(context.Background()))
}

func TestMockRepositoryImplementsRepository(t *testing.T) {
	var repo Repository = &MockRepository{InitError: errors.New("down")}
	assert.Error(t, repo.Init(context.Background()))
}
