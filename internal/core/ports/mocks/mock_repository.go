package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kamal-hamza/icecofin/internal/core/domain"
)

// MockDescriptorRepository is a mock implementation of the DescriptorRepository interface for testing
type MockDescriptorRepository struct {
	mu          sync.RWMutex
	descriptors map[string]*domain.Descriptor

	// SaveErr is returned by Save when set
	SaveErr error
}

// NewMockDescriptorRepository creates a new mock repository
func NewMockDescriptorRepository() *MockDescriptorRepository {
	return &MockDescriptorRepository{
		descriptors: make(map[string]*domain.Descriptor),
	}
}

// Save stores the descriptor in memory
func (m *MockDescriptorRepository) Save(ctx context.Context, path string, descriptor *domain.Descriptor) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *descriptor
	m.descriptors[path] = &copied
	return nil
}

// Load retrieves a descriptor by path
func (m *MockDescriptorRepository) Load(ctx context.Context, path string) (*domain.Descriptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.descriptors[path]
	if !ok {
		return nil, fmt.Errorf("descriptor not found: %s", path)
	}
	copied := *d
	return &copied, nil
}

// Paths returns every path a descriptor was saved to
func (m *MockDescriptorRepository) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.descriptors))
	for p := range m.descriptors {
		paths = append(paths, p)
	}
	return paths
}

// --- MockFileTimes ---

// MockFileTimes returns fixed timestamps
type MockFileTimes struct {
	Created  time.Time
	Modified time.Time
	Err      error
}

// NewMockFileTimes creates a mock with both times set to t
func NewMockFileTimes(t time.Time) *MockFileTimes {
	return &MockFileTimes{Created: t, Modified: t}
}

// Times returns the configured timestamps
func (m *MockFileTimes) Times(path string) (time.Time, time.Time, error) {
	if m.Err != nil {
		return time.Time{}, time.Time{}, m.Err
	}
	return m.Created, m.Modified, nil
}
