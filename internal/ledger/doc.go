// Package ledger holds the ordered list of API version steps a driver
// supports. A ledger is immutable: Append returns a new value, Validate and
// ResolveCeiling are pure queries over the sequence.
package ledger
