/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package heap

import (
	"errors"
	"fmt"
)

var ErrNullHandle = errors.New("null handle")

var ErrForeignHandle = errors.New("handle belongs to other arena")

var ErrStaleHandle = errors.New("stale handle")

var ErrUninitialized = errors.New("record is not initialized")

var ErrAlreadyInitialized = errors.New("record already initialized")

func enrich(err error, h Handle) error {
	return fmt.Errorf("%w: %v", err, h)
}
