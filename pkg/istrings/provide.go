/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

import (
	"github.com/VictoriaMetrics/fastcache"
)

// Creates new interned string table.
//
// lookupCacheBytes limits the byte lookup cache used by InternBytes;
// use DefaultLookupCacheBytes if unsure.
func New(lookupCacheBytes int) IStrings {
	t := &table{
		index:  make(map[string]*entry),
		lookup: fastcache.New(lookupCacheBytes),
	}
	t.empty = t.Intern("")
	return t
}
