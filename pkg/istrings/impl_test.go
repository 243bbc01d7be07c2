/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package istrings

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_IStrings(t *testing.T) {
	require := require.New(t)

	strs := New(DefaultLookupCacheBytes)
	require.Equal(1, strs.Len(), "empty string is interned at start")
	require.True(strs.Empty().IsEmpty())
	require.Equal("", strs.Empty().String())

	a := strs.Intern("localName")
	b := strs.Intern("localName")
	require.True(a == b, "same value must share entry")
	require.True(a.Equal(b))
	require.Equal(2, strs.Len())

	c := strs.InternBytes([]byte("localName"))
	require.True(a == c)

	d := strs.InternBytes([]byte("other"))
	require.Equal("other", d.String())
	require.Equal(3, strs.Len())
	require.True(d == strs.Intern("other"))
	require.True(d == strs.InternBytes([]byte("other")))

	require.False(a.Equal(d))
	require.True(a.Is("localName"))
	require.Equal(len("localName"), a.Len())
}

func TestAtom_ZeroValue(t *testing.T) {
	require := require.New(t)

	var zero Atom
	require.True(zero.IsEmpty())
	require.Equal("", zero.String())
	require.Zero(zero.Len())

	strs := New(DefaultLookupCacheBytes)
	require.True(zero.Equal(strs.Empty()))
	require.True(strs.Empty().Equal(zero))
}

func TestAtom_EqualAcrossTables(t *testing.T) {
	require := require.New(t)

	a := New(DefaultLookupCacheBytes).Intern("uri")
	b := New(DefaultLookupCacheBytes).Intern("uri")
	require.False(a == b, "different tables own different entries")
	require.True(a.Equal(b), "atoms compare by value")
}

func TestIStrings_Concurrent(t *testing.T) {
	require := require.New(t)

	strs := New(DefaultLookupCacheBytes)
	const workers, names = 8, 100

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < names; i++ {
				name := fmt.Sprintf("name%d", i)
				if w%2 == 0 {
					strs.Intern(name)
				} else {
					strs.InternBytes([]byte(name))
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(names+1, strs.Len())
	for i := 0; i < names; i++ {
		name := fmt.Sprintf("name%d", i)
		require.True(strs.Intern(name) == strs.InternBytes([]byte(name)), name)
	}
}
