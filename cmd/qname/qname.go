/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/scriptvm/pkg/avm2"
	"github.com/voedger/scriptvm/pkg/literal"
)

func newConstructCmd(params *CLIParams) *cobra.Command {
	return &cobra.Command{
		Use:   "construct [LITERAL...]",
		Short: "Constructs new QName from literal arguments, as `new QName(...)`",
		Example: `  qname construct 'ns("http://example.com")' '"name"'
  qname construct '"*"'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQName(cmd, params, args, avm2.IVM.Construct)
		},
	}
}

func newCallCmd(params *CLIParams) *cobra.Command {
	return &cobra.Command{
		Use:   "call [LITERAL...]",
		Short: "Calls QName as a function, as `QName(...)`",
		Example: `  qname call 'qname("name")'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQName(cmd, params, args, avm2.IVM.Call)
		},
	}
}

func runQName(cmd *cobra.Command, params *CLIParams, args []string, op func(avm2.IVM, []avm2.Value) (avm2.QNameObject, error)) error {
	vm, err := wireVM(*params)
	if err != nil {
		return err
	}

	values, err := literal.EvalAll(vm, args...)
	if err != nil {
		return err
	}

	obj, err := op(vm, values)
	if err != nil {
		return err
	}

	return printQName(cmd.OutOrStdout(), vm, obj)
}

func printQName(w io.Writer, vm avm2.IVM, obj avm2.QNameObject) error {
	s, err := vm.ToString(obj)
	if err != nil {
		return err
	}
	q, err := vm.QName(obj)
	if err != nil {
		return err
	}

	str := func(v avm2.Value) (string, error) {
		a, err := vm.CoerceToString(v)
		return a.String(), err
	}
	fields := []struct {
		name  string
		value avm2.Value
	}{
		{"toString", s},
		{"localName", vm.LocalName(obj)},
		{"uri", vm.URI(obj)},
		{"isQName", avm2.Bool(q.IsQName())},
	}
	for _, f := range fields {
		v, err := str(f.value)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-10s %s\n", f.name+":", v); err != nil {
			return err
		}
	}
	return nil
}
