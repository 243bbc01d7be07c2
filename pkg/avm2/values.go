/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/heap"
	"github.com/voedger/scriptvm/pkg/istrings"
)

// Runtime value.
//
// Value is a closed sum: only types of this package implement it. Nil
// Value is a hole in an arguments array.
type Value interface {
	Kind() ValueKind
	isValue()
}

type ValueKind uint8

const (
	ValueKind_null ValueKind = iota
	ValueKind_Undefined
	ValueKind_Null
	ValueKind_Bool
	ValueKind_Number
	ValueKind_Integer
	ValueKind_String
	ValueKind_Namespace
	ValueKind_QName
	ValueKind_Object
)

var valueKindNames = map[ValueKind]string{
	ValueKind_null:      "hole",
	ValueKind_Undefined: "undefined",
	ValueKind_Null:      "null",
	ValueKind_Bool:      "Boolean",
	ValueKind_Number:    "Number",
	ValueKind_Integer:   "int",
	ValueKind_String:    "String",
	ValueKind_Namespace: "Namespace",
	ValueKind_QName:     "QName",
	ValueKind_Object:    "Object",
}

func (k ValueKind) String() string {
	if n, ok := valueKindNames[k]; ok {
		return n
	}
	return "ValueKind(?)"
}

// The undefined (missing) marker
type Undefined struct{}

func (Undefined) Kind() ValueKind { return ValueKind_Undefined }
func (Undefined) isValue()        {}

// The null marker
type Null struct{}

func (Null) Kind() ValueKind { return ValueKind_Null }
func (Null) isValue()        {}

type Bool bool

func (Bool) Kind() ValueKind { return ValueKind_Bool }
func (Bool) isValue()        {}

type Number float64

func (Number) Kind() ValueKind { return ValueKind_Number }
func (Number) isValue()        {}

type Integer int32

func (Integer) Kind() ValueKind { return ValueKind_Integer }
func (Integer) isValue()        {}

// Interned string value
type String struct {
	istrings.Atom
}

func (String) Kind() ValueKind { return ValueKind_String }
func (String) isValue()        {}

// Namespace object value
type NamespaceObject struct {
	ns *Namespace
}

// Wraps namespace into value
func NewNamespaceObject(ns *Namespace) NamespaceObject {
	return NamespaceObject{ns}
}

// Returns wrapped namespace
func (o NamespaceObject) Namespace() *Namespace { return o.ns }

func (NamespaceObject) Kind() ValueKind { return ValueKind_Namespace }
func (NamespaceObject) isValue()        {}

// Qualified name object value. Refers to heap record
type QNameObject struct {
	h heap.Handle
}

// Returns heap handle of the object
func (o QNameObject) Handle() heap.Handle { return o.h }

func (QNameObject) Kind() ValueKind { return ValueKind_QName }
func (QNameObject) isValue()        {}

// Any other script object.
//
// The object converts itself to string; conversion may raise a script error.
type Object struct {
	ScriptObject
}

func (Object) Kind() ValueKind { return ValueKind_Object }
func (Object) isValue()        {}
