/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package heap

import "github.com/google/uuid"

// Creates new empty arena with unique identifier
func New[T Traceable]() *Arena[T] {
	return &Arena[T]{id: uuid.New()}
}
