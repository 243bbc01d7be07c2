/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

// Default size of the byte lookup cache. Fastcache rounds it up to its
// minimum of 32 MiB
const DefaultLookupCacheBytes = 32 * 1024 * 1024

const atomIDSize = 4
