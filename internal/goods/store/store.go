package store

import (
	"context"
	"sync"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
)

// Memory is the in-memory goods store. Records keep their seed order for the
// lifetime of the store; only the purpose field is ever changed.
type Memory struct {
	mu      sync.RWMutex
	records []*goods.Record
}

// New copies the seed records into a fresh store.
func New(seed []*goods.Record) *Memory {
	records := make([]*goods.Record, len(seed))
	for i, r := range seed {
		records[i] = r.Clone()
	}

	return &Memory{records: records}
}

func (s *Memory) List(_ context.Context) ([]*goods.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*goods.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}

	return out, nil
}

func (s *Memory) SetPurpose(_ context.Context, id string, purpose goods.Purpose) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			r.Purpose = purpose
			return true, nil
		}
	}

	return false, nil
}
