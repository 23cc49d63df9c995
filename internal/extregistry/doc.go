// Package extregistry holds the declared extensions of a driver in the order
// they were authored and validates them.
package extregistry
