/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package objcache

// Cache implementation
type CacheProvider uint8

const (
	// github.com/hashicorp/golang-lru/v2
	Hashicorp CacheProvider = iota

	// github.com/Yiling-J/theine-go
	Theine
)

// Default cache provider
const DefaultProvider = Hashicorp

func (p CacheProvider) String() string {
	switch p {
	case Hashicorp:
		return "hashicorp"
	case Theine:
		return "theine"
	}
	return "unknown"
}

// Returns is provider implemented
func (p CacheProvider) Known() bool { return p <= Theine }

// Parses cache provider from its name
func ParseProvider(name string) (CacheProvider, bool) {
	switch name {
	case "", "hashicorp":
		return Hashicorp, true
	case "theine":
		return Theine, true
	}
	return DefaultProvider, false
}
