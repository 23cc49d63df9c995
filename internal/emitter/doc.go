// Package emitter builds the capability table of a driver and renders it as
// two generated C artifacts: a declarations header and a definitions source.
//
// Rendering is a pure function of the validated ledger, the validated
// extension registry and the registry source snapshot. Output never depends
// on wall-clock time, map iteration order or the environment, so two runs
// over the same inputs produce byte-identical artifacts.
//
// Entries guarded by a platform symbol are wrapped in `#ifdef SYMBOL` blocks
// in both artifacts; unconditional entries carry a `true`/`false` literal.
package emitter
