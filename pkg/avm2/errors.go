/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package avm2

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// Caller contract violation: holes in arguments, dead objects, etc.
var ErrInternalError = errors.New("internal error")

func ErrInternal(msg string, args ...any) error {
	return EnrichError(ErrInternalError, msg, args...)
}

func ErrArgumentHole(idx int) error {
	return ErrInternal("argument #%d is a hole", idx)
}

func ErrDeadObject(obj QNameObject, err error) error {
	return fmt.Errorf("%w: QName object %v: %w", ErrInternalError, obj.h, err)
}

var ErrInvalidConfigError = errors.New("invalid config")

func ErrInvalidConfig(msg string, args ...any) error {
	return EnrichError(ErrInvalidConfigError, msg, args...)
}

// Script level exception.
//
// Raised by script objects; QName operations return it unchanged.
type ScriptError struct {
	Message string
}

func NewScriptError(msg string) *ScriptError {
	return &ScriptError{Message: msg}
}

func (e *ScriptError) Error() string {
	return "script error: " + e.Message
}
