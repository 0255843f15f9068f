//go:build !glnocheck

package gl

// errorChecks reports whether wrappers read the error flag after each call.
const errorChecks = true
