/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package apiver

import (
	"errors"
	"fmt"
)

var ErrUnknownVersion = errors.New("unknown API version")

func ErrUnknownVersionName(name string) error {
	return fmt.Errorf("%w: «%s»", ErrUnknownVersion, name)
}
