// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

// BoundedQueue is the combined producer-consumer interface satisfied
// by all four wait-strategy queue types (SpinQueue, YieldQueue,
// FutexQueue, CondQueue).
//
// Unlike a non-blocking queue, BoundedQueue's operations block: a full
// Enqueue or an empty Dequeue parks on the queue's wait strategy
// rather than returning immediately. Each operation has a second form
// accepting a Backoff that controls how long the caller spins before
// parking.
type BoundedQueue[T any] interface {
	// Enqueue adds an element to the queue, blocking on the wait
	// strategy until a slot is free. It never fails; producer count
	// is bounded externally by the caller.
	Enqueue(elem *T)

	// EnqueueBackoff is Enqueue with an explicit per-call Backoff
	// controlling the spin-before-block policy.
	EnqueueBackoff(elem *T, b Backoff)

	// Dequeue removes the oldest element into *out, blocking on the
	// wait strategy until one is available. It returns false only if
	// Finish has been called and the caller's ticket is beyond the
	// last produced element; otherwise it returns true.
	Dequeue(out *T) bool

	// DequeueBackoff is Dequeue with an explicit per-call Backoff
	// controlling the spin-before-block policy.
	DequeueBackoff(out *T, b Backoff) bool

	// Finish marks the queue closed and wakes every parked waiter.
	// It does not wake producers; an Enqueue already in flight is
	// allowed to complete. Finish is idempotent.
	Finish()

	// Finished reports whether Finish has been called. Advisory only.
	Finished() bool

	// Empty reports whether the queue currently holds no elements.
	// Advisory only — a concurrent Enqueue may invalidate the answer
	// immediately after it is returned.
	Empty() bool

	// Cap returns the queue's capacity, the nonzero power of two
	// passed to its constructor.
	Cap() int
}
