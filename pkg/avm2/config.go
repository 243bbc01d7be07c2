/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/objcache"
)

// VM configuration. Fixed for the lifetime of a loaded program
type Config struct {
	// API version of the root content. Selects the public namespace and
	// the version of namespaces minted from URIs
	RootVersion apiver.Version

	NamespaceCacheProvider objcache.CacheProvider
	NamespaceCacheSize     int

	// Size of the interned strings byte lookup cache
	StringsLookupCacheBytes int
}

func DefaultConfig() Config {
	return Config{
		RootVersion:             DefaultRootVersion,
		NamespaceCacheProvider:  DefaultNamespaceCacheProvider,
		NamespaceCacheSize:      DefaultNamespaceCacheSize,
		StringsLookupCacheBytes: DefaultStringsLookupCacheBytes,
	}
}

// Returns config with root version selected by SWF release of the root content
func (c Config) WithSWFVersion(swf uint8) Config {
	c.RootVersion = apiver.FromSWFVersion(swf)
	return c
}

func (c Config) Validate() error {
	if !c.RootVersion.Concrete() {
		return ErrInvalidConfig("root version must be concrete, got %v", c.RootVersion)
	}
	if c.NamespaceCacheSize <= 0 {
		return ErrInvalidConfig("namespace cache size must be positive, got %d", c.NamespaceCacheSize)
	}
	if !c.NamespaceCacheProvider.Known() {
		return ErrInvalidConfig("unknown namespace cache provider %d", c.NamespaceCacheProvider)
	}
	if c.StringsLookupCacheBytes <= 0 {
		return ErrInvalidConfig("strings lookup cache size must be positive, got %d", c.StringsLookupCacheBytes)
	}
	return nil
}
