// SPDX-License-Identifier: MIT

package dtw

import "errors"

var (
	// ErrBadWindow indicates a negative window.
	ErrBadWindow = errors.New("dtw: window must be ≥ 0")
	// ErrWindowTooNarrow indicates no alignment fits inside the window.
	ErrWindowTooNarrow = errors.New("dtw: window narrower than the length difference")
	// ErrPathNeedsMatrix indicates path recovery was requested without FullMatrix storage.
	ErrPathNeedsMatrix = errors.New("dtw: path recovery requires MemoryMode=FullMatrix")
)

// MemoryMode controls how the DP table is stored.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)×(m+1) table; supports path recovery.
	FullMatrix MemoryMode = iota
	// TwoRows keeps only the previous and current rows; distance only.
	TwoRows
)

// Option configures Align and CostMatrix.
type Option func(*options)

type options struct {
	window   int // 0 = unconstrained
	penalty  float64
	wantPath bool
	mode     MemoryMode
}

// WithWindow restricts matches to |i−j| ≤ w (Sakoe–Chiba band). 0 disables the band.
func WithWindow(w int) Option { return func(o *options) { o.window = w } }

// WithSlopePenalty adds p to every insertion/deletion step.
func WithSlopePenalty(p float64) Option { return func(o *options) { o.penalty = p } }

// WithPath asks Align to return the warping path.
func WithPath() Option { return func(o *options) { o.wantPath = true } }

// WithMemoryMode selects table storage.
func WithMemoryMode(m MemoryMode) Option { return func(o *options) { o.mode = m } }

func gatherOptions(opts ...Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
