// Package config defines the format-agnostic model of a driver's declarative
// capability manifest, along with the Loader interface that concrete formats
// (such as HCL) implement.
//
// The `config.Model` is the single input of the compiler pipeline. Its values
// are exactly as authored: version strings are not yet parsed and enablement
// values are not yet resolved into predicates.
package config
