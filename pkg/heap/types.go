/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package heap

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Reference to a heap record.
//
// Handle stays valid until the record is collected. Zero value is the null handle.
type Handle struct {
	arena uuid.UUID
	index uint32
	gen   uint32
}

// Returns is handle null
func (h Handle) IsNull() bool { return h.arena == uuid.Nil }

// Returns arena identifier the handle belongs to
func (h Handle) Arena() uuid.UUID { return h.arena }

func (h Handle) String() string {
	if h.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%v#%d.%d", h.arena, h.index, h.gen)
}

type slotState uint8

const (
	slotFree slotState = iota
	slotAllocated
	slotInitialized
)

type slot[T Traceable] struct {
	value T
	gen   uint32
	state slotState
}

// Arena of generation-tracked slots
type Arena[T Traceable] struct {
	id    uuid.UUID
	mu    sync.RWMutex
	slots []slot[T]
	free  []uint32
	stats Stats
}

// Single use write capability for a freshly allocated record.
//
// Only Arena.Allocate creates mutations.
type Mutation[T Traceable] struct {
	arena *Arena[T]
	h     Handle
	used  bool
}

// Arena statistics
type Stats struct {
	// Initialized records
	Live int
	// Allocated records waiting for initialization
	Pending int
	// Free slots ready for reuse
	Free int
	// References registered by write barrier
	BarrierWrites uint64
	// Collections performed
	Collections uint64
	// Records freed by all collections
	Freed uint64
}
