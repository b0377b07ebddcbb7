// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/gridmat/matrix"

// Option configures Correlate and Convolve.
type Option[T matrix.Number] func(*options[T])

type options[T matrix.Number] struct {
	pad T // value read for cells outside the source
}

// WithPadding sets the value read for neighborhood cells that fall outside
// the source. The default is zero.
func WithPadding[T matrix.Number](v T) Option[T] {
	return func(o *options[T]) { o.pad = v }
}

func gatherOptions[T matrix.Number](opts ...Option[T]) options[T] {
	var o options[T]
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
