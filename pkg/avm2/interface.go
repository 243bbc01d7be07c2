/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/heap"
	"github.com/voedger/scriptvm/pkg/istrings"
)

// Script object implemented outside of this package
type ScriptObject interface {
	// Converts object to string.
	//
	// Returned error is a script exception and is propagated unchanged.
	ToString() (string, error)
}

// Virtual machine part which owns qualified names.
//
// Every method requires arguments arrays without holes; holes are
// rejected with ErrInternal.
type IVM interface {
	// Constructs new QName object (`new QName(...)`).
	//
	// Accepts 0, 1 or 2 arguments, arguments after the second are ignored.
	Construct(args []Value) (QNameObject, error)

	// Calls QName as conversion function (`QName(...)`).
	//
	// Returns the argument itself if it is single QName object, otherwise
	// constructs new QName object.
	Call(args []Value) (QNameObject, error)

	// QName.localName getter. Returns Undefined if this is not QName object
	LocalName(this Value) Value

	// QName.uri getter. Returns String, Null if QName has no URI or Undefined if this is not QName object
	URI(this Value) Value

	// QName.toString(). Returns Undefined if this is not QName object
	ToString(this Value) (Value, error)

	// Returns read-only snapshot of QName object
	QName(obj QNameObject) (QNameInfo, error)

	// Converts any value to interned string
	CoerceToString(v Value) (istrings.Atom, error)

	// Collects QName objects not reachable from roots. Returns number of freed objects
	Collect(roots ...Value) int

	// Returns QName heap statistics
	HeapStats() heap.Stats

	Strings() istrings.IStrings

	Namespaces() INamespaces

	// Root API version, fixed for the VM lifetime
	RootVersion() apiver.Version

	// Public namespace for the root API version
	PublicNamespace() *Namespace
}

// Shared namespaces registry
type INamespaces interface {
	// Returns package namespace with specified URI and version
	Package(uri istrings.Atom, v apiver.Version) *Namespace

	// Returns public namespace (package namespace with empty URI) for version
	Public(v apiver.Version) *Namespace

	// Returns package namespace for URI from compiled code.
	//
	// Trailing version marker of URI, if any, overrides specified version.
	PackageFromABC(uri string, v apiver.Version) *Namespace

	// Returns number of cached namespaces
	Len() int
}
