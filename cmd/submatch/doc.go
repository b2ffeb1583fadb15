// Package main hosts the submatch CLI entrypoint and command graph.
//
// The Cobra-based command tree plans subtitle extraction, font dumps, and
// subtitle renames for a working directory, previews every planned change,
// and applies it after confirmation. It centralizes configuration loading,
// logger construction, and run correlation so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
