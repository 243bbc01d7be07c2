/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/scriptvm/pkg/apiver"
	"github.com/voedger/scriptvm/pkg/avm2"
	"github.com/voedger/scriptvm/pkg/objcache"
)

// Builds VM configuration from defaults, configuration file and flags.
//
// Flags take precedence over the file, --root-version over --swf-version.
func provideConfig(params CLIParams) (avm2.Config, error) {
	cfg := avm2.DefaultConfig()

	if params.ConfigFile != "" {
		if err := loadConfigFile(params.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}

	if params.SWFVersion != 0 {
		cfg = cfg.WithSWFVersion(params.SWFVersion)
	}
	if params.RootVersion != "" {
		v, err := apiver.ParseVersion(params.RootVersion)
		if err != nil {
			return cfg, err
		}
		cfg.RootVersion = v
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("root version %v, namespace cache %v[%d]", cfg.RootVersion, cfg.NamespaceCacheProvider, cfg.NamespaceCacheSize))
	}
	return cfg, cfg.Validate()
}

func loadConfigFile(name string, cfg *avm2.Config) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errInvalidConfigFile(name, err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errInvalidConfigFile(name, err)
	}

	if fc.SWFVersion != 0 {
		*cfg = cfg.WithSWFVersion(fc.SWFVersion)
	}
	if fc.RootVersion != "" {
		v, err := apiver.ParseVersion(fc.RootVersion)
		if err != nil {
			return errInvalidConfigFile(name, err)
		}
		cfg.RootVersion = v
	}
	if fc.NamespaceCache.Provider != "" {
		p, ok := objcache.ParseProvider(fc.NamespaceCache.Provider)
		if !ok {
			return errInvalidConfigFile(name, fmt.Errorf("%w: «%s»", ErrUnknownCacheProvider, fc.NamespaceCache.Provider))
		}
		cfg.NamespaceCacheProvider = p
	}
	if fc.NamespaceCache.Size != 0 {
		cfg.NamespaceCacheSize = fc.NamespaceCache.Size
	}
	if fc.StringsLookupCacheBytes != 0 {
		cfg.StringsLookupCacheBytes = fc.StringsLookupCacheBytes
	}
	return nil
}
