// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports). Services depend on these abstractions;
// adapters under internal/adapters/driven implement them.
//
// Adapters must surface provider failures as ordinary errors, never raw
// panics, so the services layer can map them onto the fallback ladder.
package driven
