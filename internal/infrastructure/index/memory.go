// Package index holds the in-memory document index the search engine
// queries. Contents are immutable after insertion, so the index only has
// to guard its own map; callers never coordinate across keys.
package index

import (
	"sort"
	"sync"

	"github.com/insightlab/research-assistant/internal/core/domain"
)

type Memory struct {
	mu   sync.RWMutex
	docs map[int64]domain.DocumentContent
}

func NewMemory() *Memory {
	return &Memory{
		docs: make(map[int64]domain.DocumentContent),
	}
}

// Put inserts a fully parsed document. Insertion is all-or-nothing: the
// caller assembles the complete content before handing it over.
func (m *Memory) Put(content domain.DocumentContent) {
	m.mu.Lock()
	m.docs[content.ID] = content
	m.mu.Unlock()
}

func (m *Memory) Get(id int64) (domain.DocumentContent, bool) {
	m.mu.RLock()
	content, ok := m.docs[id]
	m.mu.RUnlock()
	return content, ok
}

// All returns every indexed document ordered by id.
func (m *Memory) All() []domain.DocumentContent {
	m.mu.RLock()
	out := make([]domain.DocumentContent, 0, len(m.docs))
	for _, content := range m.docs {
		out = append(out, content)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *Memory) Delete(id int64) {
	m.mu.Lock()
	delete(m.docs, id)
	m.mu.Unlock()
}
