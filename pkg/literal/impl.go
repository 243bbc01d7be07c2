/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package literal

import (
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/avm2"
)

var basicLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Float", Pattern: `[-+]?(\d+\.\d*([eE][-+]?\d+)?|\d+[eE][-+]?\d+|\.\d+([eE][-+]?\d+)?|Infinity)|NaN`},
	{Name: "Int", Pattern: `[-+]?(0|[1-9]\d*)`},
	{Name: "String", Pattern: `("(\\"|[^"])*")|('(\\'|[^'])*')`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
})

var parser = participle.MustBuild[Literal](
	participle.Lexer(basicLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

func parseImpl(fileName, text string) (*Literal, error) {
	lit, err := parser.ParseString(fileName, text)
	if err != nil {
		return nil, errSyntax(err)
	}
	return lit, nil
}

func evalImpl(vm avm2.IVM, lit *Literal) (avm2.Value, error) {
	switch {
	case lit.Undefined:
		return avm2.Undefined{}, nil
	case lit.Null:
		return avm2.Null{}, nil
	case lit.Bool != nil:
		return avm2.Bool(*lit.Bool), nil
	case lit.Number != nil:
		return avm2.Number(*lit.Number), nil
	case lit.Integer != nil:
		if i := *lit.Integer; i >= math.MinInt32 && i <= math.MaxInt32 {
			return avm2.Integer(i), nil
		}
		return avm2.Number(*lit.Integer), nil
	case lit.String != nil:
		return avm2.String{Atom: vm.Strings().Intern(*lit.String)}, nil
	case lit.Namespace != nil:
		return evalNamespace(vm, lit.Namespace)
	case lit.QName != nil:
		return evalQName(vm, lit.QName)
	case lit.Throws != nil:
		return avm2.Object{ScriptObject: thrower(lit.Throws.Message)}, nil
	}
	// notest
	return nil, errAt(lit.Pos, ErrSyntax)
}

func evalNamespace(vm avm2.IVM, lit *Namespace) (avm2.Value, error) {
	ver := vm.RootVersion()
	if lit.Version != nil {
		v, err := apiver.ParseVersion(*lit.Version)
		if err != nil {
			return nil, errAt(lit.Pos, errSyntax(err))
		}
		ver = v
	}
	ns := vm.Namespaces().PackageFromABC(lit.URI, ver)
	return avm2.NewNamespaceObject(ns), nil
}

func evalQName(vm avm2.IVM, lit *QName) (avm2.Value, error) {
	args := make([]avm2.Value, 0, len(lit.Args))
	for _, a := range lit.Args {
		v, err := evalImpl(vm, a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	obj, err := vm.Construct(args)
	if err != nil {
		return nil, errAt(lit.Pos, err)
	}
	if logger.IsVerbose() {
		logger.Verbose("literal", lit.Pos, "constructed", obj.Handle())
	}
	return obj, nil
}

// Script object which string conversion throws a script error
type thrower string

func (t thrower) ToString() (string, error) {
	return "", avm2.NewScriptError(string(t))
}
