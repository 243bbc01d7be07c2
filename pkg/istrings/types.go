/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

// Interned string.
//
// Zero value is the empty string.
type Atom struct {
	e *entry
}

type entry struct {
	id    uint32
	value string
}

// Returns atom value
func (a Atom) String() string {
	if a.e == nil {
		return ""
	}
	return a.e.value
}

// Returns is atom value empty
func (a Atom) IsEmpty() bool {
	return a.e == nil || len(a.e.value) == 0
}

// Returns atom value length in bytes
func (a Atom) Len() int {
	if a.e == nil {
		return 0
	}
	return len(a.e.value)
}

// Compares atoms by value
func (a Atom) Equal(b Atom) bool {
	if a.e == b.e {
		return true
	}
	return a.String() == b.String()
}

// Returns is atom value equal to string s
func (a Atom) Is(s string) bool {
	return a.String() == s
}
