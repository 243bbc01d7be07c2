/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package objcache

import (
	"github.com/voedger/scriptvm/pkg/objcache/internal/hashicorp"
	"github.com/voedger/scriptvm/pkg/objcache/internal/theine"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return NewProvider[K, V](DefaultProvider, size, onEvicted)
}

// Creates and return new object cache implemented by specified provider.
//
// # Panics:
//   - if provider is unknown
func NewProvider[K comparable, V any](p CacheProvider, size int, onEvicted func(K, V)) ICache[K, V] {
	switch p {
	case Hashicorp:
		return hashicorp.New[K, V](size, onEvicted)
	case Theine:
		return theine.New[K, V](size, onEvicted)
	}
	panic("unknown cache provider: " + p.String())
}
