/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package literal

import (
	"strconv"

	"github.com/voedger/scriptvm/pkg/avm2"
)

// Parses single value literal
func Parse(text string) (*Literal, error) {
	return parseImpl("", text)
}

// Evaluates parsed literal into VM value. QName literals are constructed
// in the specified VM
func Eval(vm avm2.IVM, lit *Literal) (avm2.Value, error) {
	return evalImpl(vm, lit)
}

// Parses and evaluates each text as separate literal. Used to build
// argument lists
func EvalAll(vm avm2.IVM, texts ...string) ([]avm2.Value, error) {
	vv := make([]avm2.Value, 0, len(texts))
	for i, text := range texts {
		lit, err := parseImpl("#"+strconv.Itoa(i+1), text)
		if err != nil {
			return nil, err
		}
		v, err := evalImpl(vm, lit)
		if err != nil {
			return nil, err
		}
		vv = append(vv, v)
	}
	return vv, nil
}
