// Package registrysource defines the query interface the compiler uses to
// cross-reference declared extensions against the canonical Vulkan registry,
// plus an in-memory Store that concrete parsers (vkxml, snapshot) populate.
//
// The compiler never mutates a Source and performs at most one Lookup per
// declared extension.
package registrysource
