/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_formatNumber(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-42, "-42"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{123456789012, "123456789012"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-10, "-2.5e-10"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, formatNumber(tt.f))
		})
	}
}

func TestCoerceToString(t *testing.T) {
	vm := newTestVM(t)

	obj := &mockObject{}
	obj.On("ToString").Return("[object Thing]", nil)

	qn, _ := vm.mustConstruct(t, vm.str("u"), vm.str("n"))

	tests := []struct {
		v    Value
		want string
	}{
		{Undefined{}, "undefined"},
		{Null{}, "null"},
		{Bool(false), "false"},
		{Bool(true), "true"},
		{Number(3), "3"},
		{Integer(-1), "-1"},
		{vm.str("s"), "s"},
		{NewNamespaceObject(vm.public), ""},
		{qn, "{u}n"},
		{Object{obj}, "[object Thing]"},
	}
	for _, tt := range tests {
		t.Run(tt.v.Kind().String(), func(t *testing.T) {
			got, err := vm.CoerceToString(tt.v)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}

	t.Run("errors", func(t *testing.T) {
		require := require.New(t)

		_, err := vm.CoerceToString(nil)
		require.ErrorIs(err, ErrInternalError)
		_, err = vm.CoerceToString(Object{})
		require.ErrorIs(err, ErrInternalError)
		_, err = vm.CoerceToString(NamespaceObject{})
		require.ErrorIs(err, ErrInternalError)
	})
}

func TestValueKind_String(t *testing.T) {
	require := require.New(t)

	require.Equal("QName", QNameObject{}.Kind().String())
	require.Equal("hole", ValueKind_null.String())
	require.Equal("ValueKind(?)", ValueKind(100).String())
}
