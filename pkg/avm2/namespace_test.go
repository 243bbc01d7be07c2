/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/istrings"
	"github.com/voedger/scriptvm/pkg/objcache"
)

func TestNamespace_Equal(t *testing.T) {
	strs := istrings.New(istrings.DefaultLookupCacheBytes)
	u := strs.Intern("u")
	w := strs.Intern("w")

	t.Run("package", func(t *testing.T) {
		require := require.New(t)

		fp10 := NewPackage(u, apiver.FP_10_0)
		require.True(fp10.Equal(NewPackage(u, apiver.FP_10_0)))
		require.False(fp10.Equal(NewPackage(u, apiver.FP_10_1)))
		require.False(fp10.Equal(NewPackage(w, apiver.FP_10_0)))

		wild := NewPackage(u, apiver.AllVersions)
		require.True(wild.Equal(fp10))
		require.True(fp10.Equal(wild))
		require.True(wild.Equal(NewPackage(u, apiver.SWF_50)))
		require.False(wild.Equal(NewPackage(w, apiver.SWF_50)))

		require.False(wild.ExactEqual(fp10))
		require.True(fp10.ExactEqual(NewPackage(u, apiver.FP_10_0)))
	})

	t.Run("private namespaces are equal only to themselves", func(t *testing.T) {
		require := require.New(t)

		p := NewPrivate(u)
		require.True(p.Equal(p))
		require.False(p.Equal(NewPrivate(u)))
		require.True(p.ExactEqual(p))
		require.False(p.ExactEqual(NewPrivate(u)))
	})

	t.Run("other kinds compare by kind and URI", func(t *testing.T) {
		require := require.New(t)

		require.True(NewProtected(u).Equal(NewProtected(u)))
		require.False(NewProtected(u).Equal(NewProtected(w)))
		require.False(NewProtected(u).Equal(NewStaticProtected(u)))
		require.False(NewExplicit(u).Equal(NewPackageInternal(u)))
		require.False(NewPackageInternal(u).Equal(NewPackage(u, apiver.AllVersions)))
		require.True(NewExplicit(u).ExactEqual(NewExplicit(u)))
	})

	t.Run("any", func(t *testing.T) {
		require := require.New(t)

		require.True(AnyNamespace().Equal(AnyNamespace()))
		require.True(AnyNamespace().IsAny())
		require.False(AnyNamespace().Equal(NewPackage(strs.Empty(), apiver.AllVersions)))
	})

	t.Run("nil", func(t *testing.T) {
		require := require.New(t)

		var none *Namespace
		require.True(none.Equal(nil))
		require.False(none.Equal(AnyNamespace()))
		require.False(AnyNamespace().Equal(none))
		require.False(none.ExactEqual(AnyNamespace()))
		require.Equal("<no namespace>", none.String())
	})
}

func TestNamespace_Props(t *testing.T) {
	require := require.New(t)
	strs := istrings.New(istrings.DefaultLookupCacheBytes)

	public := NewPackage(strs.Empty(), apiver.FP_9_0)
	require.True(public.IsPublic())
	require.True(public.IsPackage())
	require.Equal(NamespaceKind_Package, public.Kind())
	require.Equal(`package "" (FP_9_0)`, public.String())

	pkg := NewPackage(strs.Intern("flash.display"), apiver.FP_10_0)
	require.False(pkg.IsPublic())
	uri, ok := pkg.PackageURI()
	require.True(ok)
	require.Equal("flash.display", uri.String())

	prot := NewProtected(strs.Intern("p"))
	_, ok = prot.PackageURI()
	require.False(ok)
	require.Equal(apiver.AllVersions, prot.Version())
	require.Equal(`protected "p"`, prot.String())
	require.Equal("static protected", NamespaceKind_StaticProtected.String())
	require.Equal("NamespaceKind(42)", NamespaceKind(42).String())
	require.Equal("*", AnyNamespace().String())
}

func TestNamespaces_Registry(t *testing.T) {
	for _, p := range []objcache.CacheProvider{objcache.Hashicorp, objcache.Theine} {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			cfg := DefaultConfig()
			cfg.NamespaceCacheProvider = p
			strs := istrings.New(cfg.StringsLookupCacheBytes)
			nn := newNamespaces(strs, cfg)

			a := nn.Package(strs.Intern("u"), apiver.FP_10_0)
			require.Same(a, nn.Package(strs.Intern("u"), apiver.FP_10_0), "namespaces are shared")
			require.NotSame(a, nn.Package(strs.Intern("u"), apiver.FP_10_1))
			require.Same(nn.Public(apiver.FP_9_0), nn.Public(apiver.FP_9_0))
			require.True(nn.Public(apiver.FP_9_0).IsPublic())
			require.Equal(3, nn.Len())
		})
	}
}

func TestNamespaces_SharedWithVM(t *testing.T) {
	for _, p := range []objcache.CacheProvider{objcache.Hashicorp, objcache.Theine} {
		t.Run(p.String(), func(t *testing.T) {
			require := require.New(t)

			cfg := DefaultConfig()
			cfg.NamespaceCacheProvider = p
			vm := MustNew(cfg)

			require.Same(vm.PublicNamespace(), vm.Namespaces().Public(cfg.RootVersion))

			u := vm.Strings().Intern("u")
			for _, v := range []apiver.Version{apiver.AllVersions, apiver.FP_10_0, apiver.VM_INTERNAL} {
				require.Same(vm.Namespaces().Package(u, v), vm.Namespaces().Package(u, v), v)
			}
			require.Equal(4, vm.Namespaces().Len())
		})
	}
}

func Test_keyOf(t *testing.T) {
	require := require.New(t)
	strs := istrings.New(istrings.DefaultLookupCacheBytes)

	marked := strs.Intern("u" + string(apiver.FP_10_0.Marker()))
	require.NotEqual(keyOf(marked, apiver.AllVersions), keyOf(strs.Intern("u"), apiver.FP_10_0))
	require.Equal(keyOf(strs.Intern("u"), apiver.FP_10_0), keyOf(strs.Intern("u"), apiver.FP_10_0))
}

func TestNamespaces_PackageFromABC(t *testing.T) {
	require := require.New(t)

	strs := istrings.New(istrings.DefaultLookupCacheBytes)
	nn := newNamespaces(strs, DefaultConfig())

	ns := nn.PackageFromABC("flash.events"+string(apiver.FP_10_1.Marker()), apiver.FP_9_0)
	require.Equal("flash.events", ns.URI().String())
	require.Equal(apiver.FP_10_1, ns.Version())

	ns = nn.PackageFromABC("my.pkg", apiver.FP_9_0)
	require.Equal("my.pkg", ns.URI().String())
	require.Equal(apiver.FP_9_0, ns.Version())
	require.Same(ns, nn.Package(strs.Intern("my.pkg"), apiver.FP_9_0))
}
