// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

// WaitStrategy selects the per-slot wait strategy a BoundedQueue[T]
// uses once a producer or consumer cannot immediately proceed.
//
// Example:
//
//	q, err := evenk.Build[Event](1024, evenk.Futex)
type WaitStrategy int

const (
	// Spin busy-waits, reloading the slot sequence in a tight loop.
	// Lowest latency, highest CPU usage under contention.
	Spin WaitStrategy = iota

	// Yield calls runtime.Gosched() between reloads instead of
	// spinning continuously.
	Yield

	// Futex blocks on the kernel wait-on-address primitive on Linux,
	// and falls back to Cond's mutex/condition-variable pair on other
	// platforms.
	Futex

	// Cond parks on a per-slot sync.Mutex/sync.Cond pair.
	Cond
)

// Build creates a BoundedQueue[T] with the given capacity and wait
// strategy. Capacity must be a nonzero power of two; ErrInvalidCapacity
// is returned otherwise.
//
// Example:
//
//	q, err := evenk.Build[Request](4096, evenk.Spin)
func Build[T any](capacity uint32, ws WaitStrategy) (BoundedQueue[T], error) {
	if _, err := validatedCapacity(capacity); err != nil {
		return nil, err
	}
	switch ws {
	case Spin:
		return NewSpinQueue[T](capacity)
	case Yield:
		return NewYieldQueue[T](capacity)
	case Futex:
		return NewFutexQueue[T](capacity)
	case Cond:
		return NewCondQueue[T](capacity)
	default:
		return NewSpinQueue[T](capacity)
	}
}
