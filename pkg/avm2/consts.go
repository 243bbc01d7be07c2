/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/istrings"
	"github.com/voedger/scriptvm/pkg/objcache"
)

// Local name of wildcard names
const AnyLocalName = "*"

const (
	DefaultRootVersion             = apiver.SWF_50
	DefaultNamespaceCacheSize      = 1024
	DefaultNamespaceCacheProvider  = objcache.DefaultProvider
	DefaultStringsLookupCacheBytes = istrings.DefaultLookupCacheBytes
)
