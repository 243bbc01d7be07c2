/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package heap

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"
)

// Returns arena identifier
func (a *Arena[T]) ID() uuid.UUID { return a.id }

// Allocates new uninitialized record.
//
// Returned mutation must be used to initialize the record. Uninitialized
// records are not collected.
func (a *Arena[T]) Allocate() (Handle, *Mutation[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if l := len(a.free); l > 0 {
		idx = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.state = slotAllocated
	h := Handle{arena: a.id, index: idx, gen: s.gen}
	return h, &Mutation[T]{arena: a, h: h}
}

// Returns copy of initialized record
func (a *Arena[T]) Get(h Handle) (value T, err error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, err := a.slot(h)
	if err != nil {
		return value, err
	}
	if s.state != slotInitialized {
		return value, enrich(ErrUninitialized, h)
	}
	return s.value, nil
}

// Returns is handle refers to initialized record of this arena
func (a *Arena[T]) Contains(h Handle) bool {
	_, err := a.Get(h)
	return err == nil
}

// Frees all initialized records not reachable from roots.
//
// Roots from other arenas and stale roots are ignored. Returns number of
// freed records.
func (a *Arena[T]) Collect(roots ...Handle) (freed int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	marked := make([]bool, len(a.slots))
	queue := make([]Handle, 0, len(roots))
	queue = append(queue, roots...)
	for len(queue) > 0 {
		h := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		s, err := a.slot(h)
		if err != nil || marked[h.index] || s.state != slotInitialized {
			continue
		}
		marked[h.index] = true
		s.value.Trace(func(ref Handle) { queue = append(queue, ref) })
	}

	var zero T
	for idx := range a.slots {
		s := &a.slots[idx]
		if s.state != slotInitialized || marked[idx] {
			continue
		}
		s.value = zero
		s.gen++
		s.state = slotFree
		a.free = append(a.free, uint32(idx))
		freed++
	}

	a.stats.Collections++
	a.stats.Freed += uint64(freed)
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("arena %v: collection #%d freed %d of %d slots", a.id, a.stats.Collections, freed, len(a.slots)))
	}
	return freed
}

// Returns arena statistics
func (a *Arena[T]) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	st := a.stats
	st.Free = len(a.free)
	for idx := range a.slots {
		switch a.slots[idx].state {
		case slotInitialized:
			st.Live++
		case slotAllocated:
			st.Pending++
		}
	}
	return st
}

// Should be called under lock
func (a *Arena[T]) slot(h Handle) (*slot[T], error) {
	if h.IsNull() {
		return nil, ErrNullHandle
	}
	if h.arena != a.id {
		return nil, enrich(ErrForeignHandle, h)
	}
	if int(h.index) >= len(a.slots) {
		// notest
		return nil, enrich(ErrStaleHandle, h)
	}
	s := &a.slots[h.index]
	if s.gen != h.gen || s.state == slotFree {
		return nil, enrich(ErrStaleHandle, h)
	}
	return s, nil
}

// Should be called under lock
func (a *Arena[T]) release(h Handle) {
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.gen++
	s.state = slotFree
	a.free = append(a.free, h.index)
}

// Returns handle of the record to initialize
func (m *Mutation[T]) Handle() Handle { return m.h }

// Releases the record without initializing it.
//
// Used when record construction fails. Does nothing if mutation is already used.
func (m *Mutation[T]) Abort() {
	if m.used {
		return
	}
	m.used = true

	a := m.arena
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.slot(m.h); err == nil {
		a.release(m.h)
	}
}

// Initializes the record.
//
// fn fills the record; references it reports by Trace are checked by the
// write barrier at the moment the record is stored. Mutation may be used
// only once. If write barrier fails, the record is released.
func (m *Mutation[T]) Init(fn func(*T)) error {
	if m.used {
		return enrich(ErrAlreadyInitialized, m.h)
	}
	m.used = true

	var value T
	fn(&value)

	a := m.arena
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.slot(m.h)
	if err != nil {
		// notest
		return err
	}

	var barrierErr error
	writes := uint64(0)
	value.Trace(func(ref Handle) {
		if barrierErr != nil {
			return
		}
		rs, err := a.slot(ref)
		switch {
		case err != nil:
			barrierErr = err
		case rs.state != slotInitialized && ref != m.h:
			barrierErr = enrich(ErrUninitialized, ref)
		default:
			writes++
		}
	})
	if barrierErr != nil {
		a.release(m.h)
		return fmt.Errorf("write barrier: %w", barrierErr)
	}

	s.value = value
	s.state = slotInitialized
	a.stats.BarrierWrites += writes
	return nil
}
