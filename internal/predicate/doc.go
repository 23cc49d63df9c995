// Package predicate defines the availability condition attached to every API
// version step and extension, and the resolver that turns an authored value
// into one.
package predicate
