/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
)

func (vm *vm) Call(args []Value) (QNameObject, error) {
	if err := vm.checkArgs(args); err != nil {
		return QNameObject{}, err
	}
	if len(args) == 1 {
		if obj, ok := args[0].(QNameObject); ok {
			return obj, nil
		}
	}
	return vm.construct(args)
}

func (vm *vm) Construct(args []Value) (QNameObject, error) {
	if err := vm.checkArgs(args); err != nil {
		return QNameObject{}, err
	}
	return vm.construct(args)
}

func (vm *vm) construct(args []Value) (QNameObject, error) {
	h, mut := vm.heap.Allocate()

	rec, err := vm.initQName(args)
	if err != nil {
		mut.Abort()
		return QNameObject{}, err
	}

	if err := mut.Init(func(r *qnameRecord) { *r = rec }); err != nil {
		// notest
		return QNameObject{}, ErrInternal("QName initialization: %v", err)
	}

	obj := QNameObject{h}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("QName %v constructed from %d args: %q, namespace %v", h, len(args), QNameInfo{rec}.String(), rec.ns))
	}
	return obj, nil
}

// Computes QName record for constructor arguments.
//
// Arguments must be checked by checkArgs.
func (vm *vm) initQName(args []Value) (qnameRecord, error) {
	// freshly allocated QName is the wildcard name
	rec := qnameRecord{localName: vm.star, anyLocal: true}

	var ns *Namespace
	if len(args) >= 2 {
		nsArg, localArg := args[0], args[1]
		if _, ok := localArg.(Undefined); ok {
			localArg = String{vm.strings.Empty()}
		}

		var err error
		if ns, err = vm.coerceNamespace(nsArg, vm.cfg.RootVersion); err != nil {
			return rec, err
		}

		if obj, ok := localArg.(QNameObject); ok {
			q, err := vm.QName(obj)
			if err != nil {
				return rec, err
			}
			rec.localName = q.LocalName()
		} else {
			local, err := vm.CoerceToString(localArg)
			if err != nil {
				return rec, err
			}
			rec.localName = local
		}
		rec.anyLocal = false
	} else {
		var arg Value = Undefined{}
		if len(args) == 1 {
			arg = args[0]
		}

		if obj, ok := arg.(QNameObject); ok {
			q, err := vm.QName(obj)
			if err != nil {
				return rec, err
			}
			return q.rec, nil
		}

		local := vm.strings.Empty()
		if _, ok := arg.(Undefined); !ok {
			var err error
			if local, err = vm.CoerceToString(arg); err != nil {
				return rec, err
			}
		}

		if !local.Is(AnyLocalName) {
			rec.localName = local
			rec.anyLocal = false
			ns = vm.public
		}
	}

	if ns != nil {
		rec.ns = ns
		rec.isQName = true
	}
	return rec, nil
}
