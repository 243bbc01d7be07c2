/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

import (
	"encoding/binary"
	"sync"

	"github.com/VictoriaMetrics/fastcache"
)

type table struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]*entry
	lookup  *fastcache.Cache
	empty   Atom
}

func (t *table) Intern(s string) Atom {
	t.mu.RLock()
	e, ok := t.index[s]
	t.mu.RUnlock()
	if ok {
		return Atom{e}
	}
	return t.add(s)
}

func (t *table) InternBytes(b []byte) Atom {
	var buf [atomIDSize]byte
	if id := t.lookup.Get(buf[:0], b); len(id) == atomIDSize {
		t.mu.RLock()
		e := t.entries[binary.LittleEndian.Uint32(id)]
		t.mu.RUnlock()
		if e.value == string(b) {
			return Atom{e}
		}
	}

	t.mu.RLock()
	e, ok := t.index[string(b)]
	t.mu.RUnlock()
	if ok {
		t.remember(e)
		return Atom{e}
	}
	return t.add(string(b))
}

func (t *table) Empty() Atom { return t.empty }

func (t *table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *table) add(s string) Atom {
	t.mu.Lock()
	e, ok := t.index[s]
	if !ok {
		e = &entry{id: uint32(len(t.entries)), value: s}
		t.entries = append(t.entries, e)
		t.index[s] = e
	}
	t.mu.Unlock()

	t.remember(e)
	return Atom{e}
}

func (t *table) remember(e *entry) {
	var id [atomIDSize]byte
	binary.LittleEndian.PutUint32(id[:], e.id)
	t.lookup.Set([]byte(e.value), id[:])
}
