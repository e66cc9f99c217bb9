// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// mutexCondWaitState is the MutexCondWait slot strategy: a per-slot
// mutex and condition variable. Here the mutex, not an atomic's
// memory order, provides the synchronization edge — the sequence
// field is a bare uint32 guarded entirely by mu.
type mutexCondWaitState struct {
	mu   sync.Mutex
	cond *sync.Cond
	seq  uint32
}

func (s *mutexCondWaitState) init(v uint32) {
	s.cond = sync.NewCond(&s.mu)
	s.seq = v
}

func (s *mutexCondWaitState) load() uint32 {
	s.mu.Lock()
	v := s.seq
	s.mu.Unlock()
	return v
}

func (s *mutexCondWaitState) store(v uint32) {
	s.mu.Lock()
	s.seq = v
	s.mu.Unlock()
}

func (s *mutexCondWaitState) waitAndLoad(expected uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == expected {
		s.cond.Wait()
	}
	return s.seq
}

func (s *mutexCondWaitState) storeAndWake(v uint32) {
	s.mu.Lock()
	s.seq = v
	s.cond.Broadcast()
	s.mu.Unlock()
}

func (s *mutexCondWaitState) wake() {
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
}

type condSlot[T any] struct {
	wait mutexCondWaitState
	value T
}

// CondQueue is a fixed-capacity MPMC queue using the MutexCondWait
// slot strategy: a waiter parks on a per-slot sync.Cond instead of
// spinning or sleeping on a kernel primitive.
type CondQueue[T any] struct {
	_        pad
	tail     atomix.Uint64
	_        pad
	head     atomix.Uint64
	_        pad
	finished atomix.Bool
	_        pad
	ring     []condSlot[T]
	mask     uint64
	capacity uint64
}

// NewCondQueue creates a CondQueue. Capacity must be a nonzero power
// of two; ErrInvalidCapacity is returned otherwise.
func NewCondQueue[T any](capacity uint32) (*CondQueue[T], error) {
	n, err := validatedCapacity(capacity)
	if err != nil {
		return nil, err
	}
	q := &CondQueue[T]{
		ring:     make([]condSlot[T], n),
		mask:     uint64(n) - 1,
		capacity: uint64(n),
	}
	for i := range q.ring {
		q.ring[i].wait.init(uint32(i))
	}
	return q, nil
}

// Cap returns the queue's capacity.
func (q *CondQueue[T]) Cap() int { return int(q.capacity) }

// Empty reports whether the queue currently holds no elements.
// Advisory only.
func (q *CondQueue[T]) Empty() bool {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadRelaxed()
	return tail <= head
}

// Finished reports whether Finish has been called. Advisory only.
func (q *CondQueue[T]) Finished() bool { return q.finished.LoadRelaxed() }

// Finish marks the queue closed and wakes every slot's wait strategy.
func (q *CondQueue[T]) Finish() {
	q.finished.StoreRelaxed(true)
	for i := range q.ring {
		q.ring[i].wait.wake()
	}
}

func (q *CondQueue[T]) waitTail(slot *condSlot[T], expected uint32) {
	cur := slot.wait.load()
	for cur != expected {
		cur = slot.wait.waitAndLoad(cur)
	}
}

func (q *CondQueue[T]) waitTailBackoff(slot *condSlot[T], expected uint32, b Backoff) {
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

func (q *CondQueue[T]) waitHead(slot *condSlot[T], ticket uint64, expected uint32) bool {
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

func (q *CondQueue[T]) waitHeadBackoff(slot *condSlot[T], ticket uint64, expected uint32, b Backoff) bool {
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

// Enqueue adds elem to the queue, parking on the slot's condition
// variable until a slot is free.
func (q *CondQueue[T]) Enqueue(elem *T) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTail(slot, uint32(t))
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// EnqueueBackoff is Enqueue with an explicit per-call Backoff.
func (q *CondQueue[T]) EnqueueBackoff(elem *T, b Backoff) {
	t := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[t&q.mask]
	q.waitTailBackoff(slot, uint32(t), b)
	slot.value = *elem
	slot.wait.storeAndWake(uint32(t) + 1)
}

// Dequeue removes the oldest element into *out. It returns false only
// if Finish has been called and this call's ticket is beyond the
// last produced element.
func (q *CondQueue[T]) Dequeue(out *T) bool {
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
func (q *CondQueue[T]) DequeueBackoff(out *T, b Backoff) bool {
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
