/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
)

var ErrInvalidConfigFile = errors.New("invalid configuration file")

func errInvalidConfigFile(name string, err error) error {
	return fmt.Errorf("%w «%s»: %w", ErrInvalidConfigFile, name, err)
}

var ErrUnknownCacheProvider = errors.New("unknown namespace cache provider")
