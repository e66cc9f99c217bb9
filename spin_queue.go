// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

import "code.hybscloud.com/atomix"

// noWaitState is the NoWait slot wait strategy: a plain atomic
// sequence with no blocking primitive at all. WaitAndLoad degrades to
// a bare reload; Wake is a no-op. Suitable when every caller supplies
// a spinning Backoff (SpinQueue's EnqueueBackoff/DequeueBackoff).
type noWaitState struct {
	seq atomix.Uint32
}

func (s *noWaitState) init(v uint32)    { s.seq.StoreRelaxed(v) }
func (s *noWaitState) load() uint32     { return s.seq.LoadAcquire() }
func (s *noWaitState) store(v uint32)   { s.seq.StoreRelease(v) }
func (s *noWaitState) waitAndLoad(uint32) uint32 { return s.load() }
func (s *noWaitState) storeAndWake(v uint32)     { s.store(v) }
func (s *noWaitState) wake()                     {}

type spinSlot[T any] struct {
	wait  noWaitState
	value T
	_     padShort
}

// SpinQueue is a fixed-capacity MPMC queue using the NoWait slot
// strategy: a waiter that has not supplied a Backoff busy-spins on a
// plain atomic load until the slot's sequence matches its ticket.
type SpinQueue[T any] struct {
	_        pad
	tail     atomix.Uint64
	_        pad
	head     atomix.Uint64
	_        pad
	finished atomix.Bool
	_        pad
	ring     []spinSlot[T]
	mask     uint64
	capacity uint64
}

// NewSpinQueue creates a SpinQueue. Capacity must be a nonzero power
// of two; ErrInvalidCapacity is returned otherwise.
func NewSpinQueue[T any](capacity uint32) (*SpinQueue[T], error) {
	n, err := validatedCapacity(capacity)
	if err != nil {
		return nil, err
	}
	q := &SpinQueue[T]{
		ring:     make([]spinSlot[T], n),
		mask:     uint64(n) - 1,
		capacity: uint64(n),
	}
	for i := range q.ring {
		q.ring[i].wait.init(uint32(i))
	}
	return q, nil
}

// Cap returns the queue's capacity.
func (q *SpinQueue[T]) Cap() int { return int(q.capacity) }

// Empty reports whether the queue currently holds no elements.
// Advisory only.
func (q *SpinQueue[T]) Empty() bool {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	return tail <= head
}

// Finished reports whether Finish has been called. Advisory only.
func (q *SpinQueue[T]) Finished() bool { return q.finished.LoadRelaxed() }

// Finish marks the queue closed and wakes every slot's wait strategy.
func (q *SpinQueue[T]) Finish() {
	q.finished.StoreRelaxed(true)
	for i := range q.ring {
		q.ring[i].wait.wake()
	}
}

func (q *SpinQueue[T]) waitTail(slot *spinSlot[T], expected uint32) {
	cur := slot.wait.load()
	for cur != expected {
		cur = slot.wait.waitAndLoad(cur)
	}
}

func (q *SpinQueue[T]) waitTailBackoff(slot *spinSlot[T], expected uint32, b Backoff) {
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

func (q *SpinQueue[T]) waitHead(slot *spinSlot[T], ticket uint64, expected uint32) bool {
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

func (q *SpinQueue[T]) waitHeadBackoff(slot *spinSlot[T], ticket uint64, expected uint32, b Backoff) bool {
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

// Enqueue adds elem to the queue, busy-spinning on the slot's wait
// strategy until a slot is free.
func (q *SpinQueue[T]) Enqueue(elem *T) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTail(slot, uint32(t))
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// EnqueueBackoff is Enqueue with an explicit per-call Backoff.
func (q *SpinQueue[T]) EnqueueBackoff(elem *T, b Backoff) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTailBackoff(slot, uint32(t), b)
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// Dequeue removes the oldest element into *out. It returns false only
// if Finish has been called and this call's ticket is beyond the
// last produced element.
func (q *SpinQueue[T]) Dequeue(out *T) bool {
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
func (q *SpinQueue[T]) DequeueBackoff(out *T, b Backoff) bool {
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
