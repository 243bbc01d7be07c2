/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"fmt"

	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/istrings"
)

type NamespaceKind uint8

const (
	// Public or package namespace. Has URI and API version
	NamespaceKind_Package NamespaceKind = iota
	NamespaceKind_PackageInternal
	NamespaceKind_Protected
	NamespaceKind_Explicit
	NamespaceKind_StaticProtected
	NamespaceKind_Private

	// The "no namespace" marker of wildcard names
	NamespaceKind_Any
)

var namespaceKindNames = [...]string{
	NamespaceKind_Package:         "package",
	NamespaceKind_PackageInternal: "internal",
	NamespaceKind_Protected:       "protected",
	NamespaceKind_Explicit:        "explicit",
	NamespaceKind_StaticProtected: "static protected",
	NamespaceKind_Private:         "private",
	NamespaceKind_Any:             "any",
}

func (k NamespaceKind) String() string {
	if int(k) < len(namespaceKindNames) {
		return namespaceKindNames[k]
	}
	return fmt.Sprintf("NamespaceKind(%d)", k)
}

// Naming scope of qualified names.
//
// Namespaces are immutable and may be shared by any number of names and VMs.
type Namespace struct {
	kind    NamespaceKind
	uri     istrings.Atom
	version apiver.Version
}

var anyNamespace = &Namespace{kind: NamespaceKind_Any}

// Creates package namespace
func NewPackage(uri istrings.Atom, v apiver.Version) *Namespace {
	return &Namespace{kind: NamespaceKind_Package, uri: uri, version: v}
}

// Creates package internal namespace
func NewPackageInternal(uri istrings.Atom) *Namespace {
	return &Namespace{kind: NamespaceKind_PackageInternal, uri: uri}
}

// Creates protected namespace
func NewProtected(uri istrings.Atom) *Namespace {
	return &Namespace{kind: NamespaceKind_Protected, uri: uri}
}

// Creates explicit namespace
func NewExplicit(uri istrings.Atom) *Namespace {
	return &Namespace{kind: NamespaceKind_Explicit, uri: uri}
}

// Creates static protected namespace
func NewStaticProtected(uri istrings.Atom) *Namespace {
	return &Namespace{kind: NamespaceKind_StaticProtected, uri: uri}
}

// Creates private namespace. Every private namespace is distinct
func NewPrivate(uri istrings.Atom) *Namespace {
	return &Namespace{kind: NamespaceKind_Private, uri: uri}
}

// Returns the "no namespace" marker
func AnyNamespace() *Namespace { return anyNamespace }

func (ns *Namespace) Kind() NamespaceKind { return ns.kind }

// Returns namespace URI. Any namespace has empty URI
func (ns *Namespace) URI() istrings.Atom { return ns.uri }

// Returns API version. Non-package namespaces are AllVersions
func (ns *Namespace) Version() apiver.Version { return ns.version }

func (ns *Namespace) IsPackage() bool { return ns.kind == NamespaceKind_Package }

// Returns is namespace the public one: package namespace with empty URI
func (ns *Namespace) IsPublic() bool { return ns.IsPackage() && ns.uri.IsEmpty() }

func (ns *Namespace) IsAny() bool { return ns.kind == NamespaceKind_Any }

// Returns URI of package namespace; ok is false for other kinds
func (ns *Namespace) PackageURI() (uri istrings.Atom, ok bool) {
	if ns.IsPackage() {
		return ns.uri, true
	}
	return uri, false
}

// Compares namespaces.
//
// Private namespaces are equal only to themselves. Package namespaces
// are equal if their URIs are equal and versions match; AllVersions
// matches any version.
func (ns *Namespace) Equal(other *Namespace) bool {
	if ns == other {
		return true
	}
	if ns == nil || other == nil {
		return false
	}
	if ns.kind != other.kind {
		return false
	}
	switch ns.kind {
	case NamespaceKind_Private:
		return false
	case NamespaceKind_Any:
		return true
	case NamespaceKind_Package:
		return ns.uri.Equal(other.uri) && ns.version.Matches(other.version)
	}
	return ns.uri.Equal(other.uri)
}

// Compares namespaces without AllVersions wildcard
func (ns *Namespace) ExactEqual(other *Namespace) bool {
	if ns == other {
		return true
	}
	if ns == nil || other == nil {
		return false
	}
	if ns.kind == NamespaceKind_Private || other.kind == NamespaceKind_Private {
		return false
	}
	return ns.kind == other.kind && ns.uri.Equal(other.uri) && ns.version == other.version
}

func (ns *Namespace) String() string {
	switch {
	case ns == nil:
		return "<no namespace>"
	case ns.kind == NamespaceKind_Any:
		return "*"
	case ns.kind == NamespaceKind_Package:
		return fmt.Sprintf("package %q (%v)", ns.uri.String(), ns.version)
	}
	return fmt.Sprintf("%v %q", ns.kind, ns.uri.String())
}
