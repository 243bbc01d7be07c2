/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package heap

// Heap records must report handles they reference, so the collector can
// trace them and the write barrier can check them.
type Traceable interface {
	Trace(visit func(Handle))
}
