/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package literal

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrSyntax = errors.New("literal syntax error")

func errSyntax(err error) error {
	return fmt.Errorf("%w: %w", ErrSyntax, err)
}

func errAt(pos lexer.Position, err error) error {
	return fmt.Errorf("%s: %w", pos, err)
}
