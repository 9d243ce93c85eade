package repository

import (
	"sync"

	"golang.org/x/exp/slices"
)

// ResultRepository keeps calculation records in insertion order.
type ResultRepository interface {
	Save(record string)
	FindAll() []string
}

type memoryRepository struct {
	mu      sync.RWMutex
	records []string
}

// NewMemoryRepository returns an append-only, in-memory ResultRepository
// that lives as long as the process.
func NewMemoryRepository() ResultRepository {
	return &memoryRepository{}
}

// Save implements ResultRepository.
func (r *memoryRepository) Save(record string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
}

// FindAll implements ResultRepository. The returned slice is a snapshot.
func (r *memoryRepository) FindAll() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.records)
}

var _ ResultRepository = (*memoryRepository)(nil)
