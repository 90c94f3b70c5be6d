// Package store keeps recently generated messages for the HTTP surface.
// The store is injected rather than held as package state, so the engine
// itself stays free of process-wide globals; persistence beyond process
// lifetime is deliberately out of scope.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/outreachx/outreachx/internal/profile"
)

// Record is a saved message with its creation time for age-based expiry.
type Record struct {
	Message   profile.Message `json:"message"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Store is the capability the HTTP layer needs: get, set, delete, and
// age-based expiry handled internally by the implementation.
type Store interface {
	Get(id string) (Record, bool)
	Put(rec Record)
	Delete(id string)
	List() []Record
}

// Memory is an in-process Store with optional TTL expiry. Safe for
// concurrent use.
type Memory struct {
	mu   sync.RWMutex
	ttl  time.Duration
	recs map[string]Record
	now  func() time.Time
}

// NewMemory builds a Memory store. ttl <= 0 disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, recs: make(map[string]Record), now: time.Now}
}

func (m *Memory) Get(id string) (Record, bool) {
	m.mu.RLock()
	rec, ok := m.recs[id]
	m.mu.RUnlock()
	if !ok || m.expired(rec) {
		if ok {
			m.Delete(id)
		}
		return Record{}, false
	}
	return rec, true
}

func (m *Memory) Put(rec Record) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = m.now()
	}
	m.mu.Lock()
	m.recs[rec.Message.ID] = rec
	m.mu.Unlock()
}

func (m *Memory) Delete(id string) {
	m.mu.Lock()
	delete(m.recs, id)
	m.mu.Unlock()
}

// List returns live records, newest first.
func (m *Memory) List() []Record {
	m.mu.Lock()
	out := make([]Record, 0, len(m.recs))
	for id, rec := range m.recs {
		if m.expired(rec) {
			delete(m.recs, id)
			continue
		}
		out = append(out, rec)
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *Memory) expired(rec Record) bool {
	return m.ttl > 0 && m.now().Sub(rec.CreatedAt) > m.ttl
}
