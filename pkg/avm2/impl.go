/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/heap"
	"github.com/voedger/scriptvm/pkg/istrings"
)

type vm struct {
	cfg        Config
	strings    istrings.IStrings
	namespaces *namespaces
	heap       *heap.Arena[qnameRecord]
	public     *Namespace
	star       istrings.Atom
}

func (vm *vm) Strings() istrings.IStrings { return vm.strings }

func (vm *vm) Namespaces() INamespaces { return vm.namespaces }

func (vm *vm) RootVersion() apiver.Version { return vm.cfg.RootVersion }

func (vm *vm) PublicNamespace() *Namespace { return vm.public }

func (vm *vm) HeapStats() heap.Stats { return vm.heap.Stats() }

func (vm *vm) QName(obj QNameObject) (QNameInfo, error) {
	rec, err := vm.heap.Get(obj.h)
	if err != nil {
		return QNameInfo{}, ErrDeadObject(obj, err)
	}
	return QNameInfo{rec}, nil
}

func (vm *vm) LocalName(this Value) Value {
	q, ok := vm.asQName(this)
	if !ok {
		return Undefined{}
	}
	return String{q.LocalName()}
}

func (vm *vm) URI(this Value) Value {
	q, ok := vm.asQName(this)
	if !ok {
		return Undefined{}
	}
	if uri, ok := q.URI(); ok {
		return String{uri}
	}
	return Null{}
}

func (vm *vm) ToString(this Value) (Value, error) {
	q, ok := vm.asQName(this)
	if !ok {
		return Undefined{}, nil
	}
	return String{vm.strings.Intern(q.String())}, nil
}

func (vm *vm) Collect(roots ...Value) int {
	handles := make([]heap.Handle, 0, len(roots))
	for _, r := range roots {
		if obj, ok := r.(QNameObject); ok {
			handles = append(handles, obj.h)
		}
	}
	return vm.heap.Collect(handles...)
}

// Returns snapshot if value is live QName object of this VM
func (vm *vm) asQName(v Value) (QNameInfo, bool) {
	obj, ok := v.(QNameObject)
	if !ok {
		return QNameInfo{}, false
	}
	q, err := vm.QName(obj)
	return q, err == nil
}

// Checks arguments array contract once at the boundary
func (vm *vm) checkArgs(args []Value) error {
	for i, a := range args {
		if a == nil {
			return ErrArgumentHole(i)
		}
		if obj, ok := a.(QNameObject); ok {
			if _, err := vm.heap.Get(obj.h); err != nil {
				return ErrDeadObject(obj, err)
			}
		}
	}
	return nil
}
