// Package manager coordinates catalog loading, validation, and
// refresh. It loads rule datasets from a source, validates them by
// building an immutable catalog, and atomically swaps the active
// catalog only when the new one is valid. A failed reload keeps the
// last good catalog in place.
//
// Refresh can be driven two ways: a filesystem watcher (for file
// sources) with debouncing, or a cron schedule (for any source).
package manager
