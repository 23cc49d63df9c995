// Package pipeline drives one compiler run over a loaded manifest:
//
//	Loaded → Validated → Resolved → Emitted
//
// with Failed reachable from every non-terminal state. Each stage produces a
// new value from the previous one; the manifest model is never modified. A
// Pipeline runs at most once.
package pipeline
