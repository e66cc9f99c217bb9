// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

import (
	"runtime"

	"code.hybscloud.com/atomix"
)

// yieldWaitState is the YieldWait slot strategy: identical to NoWait
// except WaitAndLoad relinquishes the CPU to the OS scheduler once
// before reloading.
type yieldWaitState struct {
	seq atomix.Uint32
}

func (s *yieldWaitState) init(v uint32)  { s.seq.StoreRelaxed(v) }
func (s *yieldWaitState) load() uint32   { return s.seq.LoadAcquire() }
func (s *yieldWaitState) store(v uint32) { s.seq.StoreRelease(v) }
func (s *yieldWaitState) waitAndLoad(uint32) uint32 {
	runtime.Gosched()
	return s.load()
}
func (s *yieldWaitState) storeAndWake(v uint32) { s.store(v) }
func (s *yieldWaitState) wake()                 {}

type yieldSlot[T any] struct {
	wait  yieldWaitState
	value T
	_     padShort
}

// YieldQueue is a fixed-capacity MPMC queue using the YieldWait slot
// strategy: a waiter yields to the OS scheduler between sequence
// reloads instead of busy-spinning continuously.
type YieldQueue[T any] struct {
	_        pad
	tail     atomix.Uint64
	_        pad
	head     atomix.Uint64
	_        pad
	finished atomix.Bool
	_        pad
	ring     []yieldSlot[T]
	mask     uint64
	capacity uint64
}

// NewYieldQueue creates a YieldQueue. Capacity must be a nonzero
// power of two; ErrInvalidCapacity is returned otherwise.
func NewYieldQueue[T any](capacity uint32) (*YieldQueue[T], error) {
	n, err := validatedCapacity(capacity)
	if err != nil {
		return nil, err
	}
	q := &YieldQueue[T]{
		ring:     make([]yieldSlot[T], n),
		mask:     uint64(n) - 1,
		capacity: uint64(n),
	}
	for i := range q.ring {
		q.ring[i].wait.init(uint32(i))
	}
	return q, nil
}

// Cap returns the queue's capacity.
func (q *YieldQueue[T]) Cap() int { return int(q.capacity) }

// Empty reports whether the queue currently holds no elements.
// Advisory only.
func (q *YieldQueue[T]) Empty() bool {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	return tail <= head
}

// Finished reports whether Finish has been called. Advisory only.
func (q *YieldQueue[T]) Finished() bool { return q.finished.LoadRelaxed() }

// Finish marks the queue closed and wakes every slot's wait strategy.
func (q *YieldQueue[T]) Finish() {
	q.finished.StoreRelaxed(true)
	for i := range q.ring {
		q.ring[i].wait.wake()
	}
}

func (q *YieldQueue[T]) waitTail(slot *yieldSlot[T], expected uint32) {
	cur := slot.wait.load()
	for cur != expected {
		cur = slot.wait.waitAndLoad(cur)
	}
}

func (q *YieldQueue[T]) waitTailBackoff(slot *yieldSlot[T], expected uint32, b Backoff) {
	waiting := false
	cur := slot.wait.load()
	for cur != expected {
		if waiting {
			cur = slot.wait.waitAndLoad(cur)
		} else {
			waiting = b.Backoff()
			cur = slot.wait.load()
		}
	}
}

func (q *YieldQueue[T]) waitHead(slot *yieldSlot[T], ticket uint64, expected uint32) bool {
	cur := slot.wait.load()
	for cur != expected {
		if q.finished.LoadRelaxed() {
			if ticket >= q.tail.LoadAcquire() {
				return false
			}
		}
		cur = slot.wait.waitAndLoad(cur)
	}
	return true
}

func (q *YieldQueue[T]) waitHeadBackoff(slot *yieldSlot[T], ticket uint64, expected uint32, b Backoff) bool {
	waiting := false
	cur := slot.wait.load()
	for cur != expected {
		if q.finished.LoadRelaxed() {
			if ticket >= q.tail.LoadAcquire() {
				return false
			}
		}
		if waiting {
			cur = slot.wait.waitAndLoad(cur)
		} else {
			waiting = b.Backoff()
			cur = slot.wait.load()
		}
	}
	return true
}

// Enqueue adds elem to the queue, yielding to the scheduler between
// reloads until a slot is free.
func (q *YieldQueue[T]) Enqueue(elem *T) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTail(slot, uint32(t))
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// EnqueueBackoff is Enqueue with an explicit per-call Backoff.
func (q *YieldQueue[T]) EnqueueBackoff(elem *T, b Backoff) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTailBackoff(slot, uint32(t), b)
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// Dequeue removes the oldest element into *out. It returns false only
// if Finish has been called and this call's ticket is beyond the
// last produced element.
func (q *YieldQueue[T]) Dequeue(out *T) bool {
	h := q.head.AddRelaxed(1) - 1
	slot := &q.ring[h&q.mask]
	if !q.waitHead(slot, h, uint32(h)+1) {
		return false
	}
	*out = slot.value
	var zero T
	slot.value = zero
	slot.wait.storeAndWake(uint32(h) + uint32(q.capacity))
	return true
}

// DequeueBackoff is Dequeue with an explicit per-call Backoff.
func (q *YieldQueue[T]) DequeueBackoff(out *T, b Backoff) bool {
	h := q.head.AddRelaxed(1) - 1
	slot := &q.ring[h&q.mask]
	if !q.waitHeadBackoff(slot, h, uint32(h)+1, b) {
		return false
	}
	*out = slot.value
	var zero T
	slot.value = zero
	slot.wait.storeAndWake(uint32(h) + uint32(q.capacity))
	return true
}
