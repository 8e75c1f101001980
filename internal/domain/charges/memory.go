package charges

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps charge records in a process-local map. It is the dev and
// test backing; state does not survive a restart and is not shared across
// instances, so production deployments run the Postgres repository instead.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Set(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ChargeID == "" {
		return ErrEmptyChargeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := *rec
	if cur, ok := s.records[rec.ChargeID]; ok && cur.DownloadURL != "" {
		next.DownloadURL = cur.DownloadURL
	}
	next.UpdatedAt = time.Now()
	s.records[rec.ChargeID] = next
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, chargeID string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[chargeID]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}
