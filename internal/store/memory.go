package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ivoronin/databoxes/internal/filter"
)

// DriverMemory selects the in-memory store.
const DriverMemory = "memory"

// MemStore keeps databoxes in memory and evaluates filters with
// filter.Match. It is safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	boxes map[string]Databox
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{boxes: make(map[string]Databox)}
}

func (s *MemStore) List(_ context.Context, q Query) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.boxes))
	for id := range s.boxes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fields := q.fields()
	records := []Record{}
	skipped := 0
	for _, id := range ids {
		if len(records) >= q.Take {
			break
		}
		rec := s.boxes[id].Record()
		if !filter.Match(q.Where, rec) {
			continue
		}
		if skipped < q.Skip {
			skipped++
			continue
		}
		projected := make(Record, len(fields))
		for _, f := range fields {
			projected[f] = rec[f]
		}
		records = append(records, projected)
	}
	return records, nil
}

func (s *MemStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.boxes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d.Record(), nil
}

func (s *MemStore) Insert(_ context.Context, d Databox) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boxes[d.ID]; ok {
		return fmt.Errorf("insert databox %s: duplicate id", d.ID)
	}
	s.boxes[d.ID] = d
	return nil
}

func (s *MemStore) Close() error { return nil }
