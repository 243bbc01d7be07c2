/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/valyala/bytebufferpool"

	"github.com/voedger/scriptvm/pkg/heap"
	"github.com/voedger/scriptvm/pkg/istrings"
)

// Heap record of QName object
type qnameRecord struct {
	localName istrings.Atom
	// local name is the "*" wildcard, not a literal name
	anyLocal bool
	ns       *Namespace
	isQName  bool
}

// Namespaces are plain Go values, so QName records hold no heap references
func (qnameRecord) Trace(func(heap.Handle)) {}

// Read-only snapshot of QName object
type QNameInfo struct {
	rec qnameRecord
}

func (q QNameInfo) LocalName() istrings.Atom { return q.rec.localName }

// Returns is local name the "*" wildcard
func (q QNameInfo) IsAnyName() bool { return q.rec.anyLocal }

// Returns namespace; nil if name is unqualified
func (q QNameInfo) Namespace() *Namespace { return q.rec.ns }

// Returns is object an explicit qualified name
func (q QNameInfo) IsQName() bool { return q.rec.isQName }

// Returns URI of package namespace; ok is false if name is unqualified
// or namespace is not a package one
func (q QNameInfo) URI() (uri istrings.Atom, ok bool) {
	if q.rec.ns == nil {
		return uri, false
	}
	return q.rec.ns.PackageURI()
}

// Formats name as "{uri}localName". Names without package namespace
// or with empty URI are formatted as "localName"
func (q QNameInfo) String() string {
	uri, ok := q.URI()
	if !ok || uri.IsEmpty() {
		return q.rec.localName.String()
	}

	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	_ = b.WriteByte('{')
	_, _ = b.WriteString(uri.String())
	_ = b.WriteByte('}')
	_, _ = b.WriteString(q.rec.localName.String())
	return b.String()
}

// Compares names by value: local names, namespaces and qualification
func (q QNameInfo) Equal(other QNameInfo) bool {
	return q.rec.localName.Equal(other.rec.localName) &&
		q.rec.anyLocal == other.rec.anyLocal &&
		q.rec.isQName == other.rec.isQName &&
		q.rec.ns.Equal(other.rec.ns)
}
