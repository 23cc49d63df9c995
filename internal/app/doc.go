// Package app contains the core application logic. It owns the logger and
// the validated run configuration, loads the manifest and the registry
// source, drives the compile pipeline, and publishes the generated
// artifacts. It is decoupled from any specific entrypoint like a CLI.
package app
