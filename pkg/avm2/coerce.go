/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"math"
	"strconv"
	"strings"

	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/istrings"
)

func (vm *vm) CoerceToString(v Value) (istrings.Atom, error) {
	switch v := v.(type) {
	case Undefined:
		return vm.strings.Intern("undefined"), nil
	case Null:
		return vm.strings.Intern("null"), nil
	case Bool:
		return vm.strings.Intern(strconv.FormatBool(bool(v))), nil
	case Number:
		return vm.strings.Intern(formatNumber(float64(v))), nil
	case Integer:
		return vm.strings.Intern(strconv.FormatInt(int64(v), 10)), nil
	case String:
		return v.Atom, nil
	case NamespaceObject:
		if v.ns == nil {
			return istrings.Atom{}, ErrInternal("namespace object without namespace")
		}
		return v.ns.uri, nil
	case QNameObject:
		q, err := vm.QName(v)
		if err != nil {
			return istrings.Atom{}, err
		}
		return vm.strings.Intern(q.String()), nil
	case Object:
		if v.ScriptObject == nil {
			return istrings.Atom{}, ErrInternal("object value without object")
		}
		s, err := v.ToString()
		if err != nil {
			return istrings.Atom{}, err
		}
		return vm.strings.Intern(s), nil
	case nil:
		return istrings.Atom{}, ErrInternal("coercion of a hole")
	}
	// notest
	return istrings.Atom{}, ErrInternal("coercion of unknown value kind %v", v.Kind())
}

// Resolves namespace argument of two-arguments QName constructor.
//
// Returns nil for "no namespace".
func (vm *vm) coerceNamespace(v Value, version apiver.Version) (*Namespace, error) {
	switch v := v.(type) {
	case NamespaceObject:
		if v.ns == nil {
			return nil, ErrInternal("namespace object without namespace")
		}
		if v.ns.IsAny() {
			return nil, nil
		}
		return v.ns, nil
	case QNameObject:
		q, err := vm.QName(v)
		if err != nil {
			return nil, err
		}
		if uri, ok := q.URI(); ok {
			return vm.namespaces.Package(uri, apiver.AllVersions), nil
		}
		return nil, nil
	case Null:
		return nil, nil
	case Undefined:
		return vm.namespaces.Public(version), nil
	case Bool, Number, Integer, String, Object:
		uri, err := vm.CoerceToString(v)
		if err != nil {
			return nil, err
		}
		return vm.namespaces.Package(uri, version), nil
	case nil:
		return nil, ErrInternal("namespace argument is a hole")
	}
	// notest
	return nil, ErrInternal("namespace coercion of unknown value kind %v", v.Kind())
}

// Formats number as ECMAScript Number.prototype.toString() does
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// 1e+21, 1.5e-7
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + exp
}
