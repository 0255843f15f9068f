//go:build glnocheck

package gl

const errorChecks = false
