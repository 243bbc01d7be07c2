//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"

	"github.com/voedger/scriptvm/pkg/avm2"
)

func wireVM(params CLIParams) (WiredVM, error) {
	panic(
		wire.Build(
			provideConfig,
			avm2.New,
			wire.Struct(new(WiredVM), "*"),
		),
	)
}
