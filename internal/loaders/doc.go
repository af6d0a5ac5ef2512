// Package loaders produces the retrievable corpus from the configured
// sources. Loading is total: source tiers degrade from the structured
// profile record, to the raw résumé PDF, down to a guaranteed built-in
// fallback text, so the loader always returns at least one document.
package loaders
