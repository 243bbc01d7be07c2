/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

// Interned string table.
//
// Deduplicates byte strings. Atoms of one table sharing a value share
// storage; atoms of any tables compare by value.
type IStrings interface {
	// Returns atom for specified string, interning it if necessary
	Intern(s string) Atom

	// Same as Intern, but does not allocate if the value is already interned
	InternBytes(b []byte) Atom

	// Returns the empty string atom
	Empty() Atom

	// Returns number of interned strings
	Len() int
}
