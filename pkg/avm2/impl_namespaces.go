/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/istrings"
	"github.com/voedger/scriptvm/pkg/objcache"
)

// Registry key: URI followed by version marker.
//
// Marker is always the single last rune, so keys are unambiguous.
type namespaceKey = string

func keyOf(uri istrings.Atom, v apiver.Version) namespaceKey {
	return uri.String() + string(v.Marker())
}

// Package namespaces cache.
//
// Evicted namespaces stay valid for their holders; next request creates
// an equal namespace.
type namespaces struct {
	strings istrings.IStrings
	cache   objcache.ICache[namespaceKey, *Namespace]
}

func newNamespaces(strings istrings.IStrings, cfg Config) *namespaces {
	return &namespaces{
		strings: strings,
		cache:   objcache.NewProvider[namespaceKey, *Namespace](cfg.NamespaceCacheProvider, cfg.NamespaceCacheSize, nil),
	}
}

func (nn *namespaces) Package(uri istrings.Atom, v apiver.Version) *Namespace {
	key := keyOf(uri, v)
	if ns, ok := nn.cache.Get(key); ok {
		return ns
	}
	ns := NewPackage(uri, v)
	nn.cache.Put(key, ns)
	return ns
}

func (nn *namespaces) Public(v apiver.Version) *Namespace {
	return nn.Package(nn.strings.Empty(), v)
}

func (nn *namespaces) PackageFromABC(uri string, v apiver.Version) *Namespace {
	if bare, marked, ok := apiver.SplitVersionedURI(uri); ok {
		uri, v = bare, marked
	}
	return nn.Package(nn.strings.Intern(uri), v)
}

func (nn *namespaces) Len() int { return nn.cache.Len() }
