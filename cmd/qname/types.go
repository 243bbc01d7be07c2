/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import "github.com/voedger/scriptvm/pkg/avm2"

// Command line parameters
type CLIParams struct {
	// API version name, overrides SWFVersion and configuration file
	RootVersion string

	// SWF version, zero if not specified
	SWFVersion uint8

	ConfigFile string
}

// VM configuration file
type fileConfig struct {
	RootVersion string `yaml:"rootVersion"`
	SWFVersion  uint8  `yaml:"swfVersion"`

	NamespaceCache struct {
		Provider string `yaml:"provider"`
		Size     int    `yaml:"size"`
	} `yaml:"namespaceCache"`

	StringsLookupCacheBytes int `yaml:"stringsLookupCacheBytes"`
}

type WiredVM struct {
	avm2.IVM
	Config avm2.Config
}
