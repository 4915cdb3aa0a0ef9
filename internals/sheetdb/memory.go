// file: internals/sheetdb/memory.go
package sheetdb

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore: implementasi Store di memori dengan semantik yang sama persis
// dengan spreadsheet (header baris pertama, posisi 1-based, delete menggeser
// baris). Dipakai untuk test dan mode pengembangan tanpa kredensial.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*memTable
}

type memTable struct {
	headers []string
	rows    [][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string]*memTable{}}
}

// CreateTable mendaftarkan tabel baru dengan header tetap.
func (m *MemoryStore) CreateTable(table string, headers []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = &memTable{headers: append([]string(nil), headers...)}
}

func (m *MemoryStore) table(name string) (*memTable, error) {
	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("tabel %s tidak ditemukan", name)
	}
	return t, nil
}

func (m *MemoryStore) ReadAll(_ context.Context, table string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, err := m.table(table)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(t.rows))
	for _, row := range t.rows {
		rec := make(Record, len(t.headers))
		for i, h := range t.headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemoryStore) Append(_ context.Context, table string, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.table(table)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, mapToHeaders(t.headers, rec))
	return nil
}

func (m *MemoryStore) UpdateAt(_ context.Context, table string, pos int, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.table(table)
	if err != nil {
		return err
	}
	idx := pos - 2
	if idx < 0 || idx >= len(t.rows) {
		return fmt.Errorf("update %s: posisi %d di luar tabel", table, pos)
	}
	t.rows[idx] = mapToHeaders(t.headers, rec)
	return nil
}

func (m *MemoryStore) DeleteAt(_ context.Context, table string, pos int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, err := m.table(table)
	if err != nil {
		return err
	}
	idx := pos - 2
	if idx < 0 || idx >= len(t.rows) {
		return fmt.Errorf("delete %s: posisi %d di luar tabel", table, pos)
	}
	t.rows = append(t.rows[:idx], t.rows[idx+1:]...)
	return nil
}
