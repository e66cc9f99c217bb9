// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

import "errors"

// ErrInvalidCapacity is returned by the NewXxxQueue constructors and
// Build when capacity is zero or not a power of two. Capacity is
// never rounded.
var ErrInvalidCapacity = errors.New("evenk: capacity must be a nonzero power of two")

// ErrAllocation is returned by a constructor if the cache-line-aligned
// ring allocation cannot be satisfied. Go's runtime allocator panics
// rather than returning an error on out-of-memory, so this sentinel
// exists as a documented failure kind but is not currently returned
// by any constructor in this package.
var ErrAllocation = errors.New("evenk: ring allocation failed")
