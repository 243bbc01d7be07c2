/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"github.com/voedger/scriptvm/pkg/heap"
	"github.com/voedger/scriptvm/pkg/istrings"
)

// Creates new VM with specified configuration
func New(cfg Config) (IVM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strs := istrings.New(cfg.StringsLookupCacheBytes)
	vm := &vm{
		cfg:        cfg,
		strings:    strs,
		namespaces: newNamespaces(strs, cfg),
		heap:       heap.New[qnameRecord](),
		star:       strs.Intern(AnyLocalName),
	}
	vm.public = vm.namespaces.Public(cfg.RootVersion)
	return vm, nil
}

// Same as New, but panics on invalid configuration
func MustNew(cfg Config) IVM {
	vm, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return vm
}
