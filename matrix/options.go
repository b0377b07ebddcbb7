// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for local-window extraction.
// This file defines:
//   - LocalOption (functional option over unexported state),
//   - documented defaults (constants),
//   - gatherLocalOptions helper that resolves defaults then applies setters.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Options record values only. Window validation happens in the consuming
//     call and surfaces as ErrInvalidWindowSize instead of a panic.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWindowRows is the default local-window height.
	DefaultWindowRows = 3

	// DefaultWindowCols is the default local-window width.
	DefaultWindowCols = 3
)

// LocalOption configures GetLocalMatrix and GetLocalMatrixFill.
type LocalOption func(*localOptions)

// localOptions is the resolved configuration.
type localOptions struct {
	rows int // window height, positive odd
	cols int // window width, positive odd
}

// WithWindow sets the window shape (rows × cols). Both must be positive odd
// numbers; the check is performed by the consuming call.
func WithWindow(rows, cols int) LocalOption {
	return func(o *localOptions) {
		o.rows = rows
		o.cols = cols
	}
}

// gatherLocalOptions applies opts over the documented defaults.
// nil setters are skipped.
func gatherLocalOptions(opts ...LocalOption) localOptions {
	o := localOptions{rows: DefaultWindowRows, cols: DefaultWindowCols}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
