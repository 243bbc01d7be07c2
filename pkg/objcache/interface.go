/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package objcache

// Bounded objects cache
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Returns number of cached values
	Len() int
}
