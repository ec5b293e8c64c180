package store

import (
	"context"
	"fmt"
	"sync"
)

// MockRepository is an in-memory Repository for testing. It enforces the
// unique identifier constraint like the database does.
type MockRepository struct {
	mu        sync.Mutex
	Documents []Document
	InitCalls int

	// Error hooks for testing failure paths
	InitError error
	SaveError error
}

// Init records the call.
func (m *MockRepository) Init(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
	return m.InitError
}

// Save stores a copy of doc unless its identifier is already present.
func (m *MockRepository) Save(_ context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}
	if id := doc.Identifier(); id != "" {
		for _, d := range m.Documents {
			if d.Identifier() == id {
				return fmt.Errorf("%w: %s", ErrDuplicate, id)
			}
		}
	}
	doc.ID = uint(len(m.Documents) + 1)
	m.Documents = append(m.Documents, *doc)
	return nil
}
