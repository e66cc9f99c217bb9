// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package evenk provides a fixed-capacity, multi-producer/multi-consumer
// FIFO queue built around a ring buffer of per-slot sequence numbers.
//
// Unlike a pool of single-purpose non-blocking queues, evenk's queue
// blocks: a full Enqueue or an empty Dequeue parks the calling goroutine
// on a per-slot wait strategy instead of returning immediately. Four
// wait strategies are available, selected at construction time:
//
//	SpinQueue  - busy-spin only; pair with a Backoff
//	YieldQueue - yields to the OS scheduler between spins
//	FutexQueue - blocks on a kernel wait-on-address primitive (Linux)
//	CondQueue  - blocks on a per-slot mutex/condition variable
//
// # Quick Start
//
//	q, err := evenk.NewFutexQueue[Job](1024)
//	if err != nil {
//	    // capacity was not a power of two
//	}
//
//	// Producer
//	go func() {
//	    for job := range incoming {
//	        q.Enqueue(&job)
//	    }
//	}()
//
//	// Consumer
//	go func() {
//	    var job Job
//	    for q.Dequeue(&job) {
//	        process(job)
//	    }
//	}()
//
// # Backoff
//
// Both Enqueue and Dequeue have a second form accepting a Backoff, a
// per-call object that controls how aggressively the caller spins
// before parking on the wait strategy:
//
//	b := &backoff.Spin{}
//	for {
//	    var job Job
//	    if q.DequeueBackoff(&job, b) {
//	        process(job)
//	    }
//	}
//
// evenk defines only the Backoff contract; concrete policies live in
// the sibling backoff subpackage.
//
// # Closing
//
// Finish marks the queue closed and wakes every parked waiter.
// Consumers already parked, or arriving after Finish, drain whatever
// was produced before Finish was called and then report closure:
//
//	close(incoming)
//	producerWg.Wait()
//	q.Finish()
//
// Finish does not wake producers: an Enqueue in flight when Finish is
// called is allowed to complete. Callers must stop enqueueing before
// (or concurrently with) calling Finish — evenk does not itself refuse
// an Enqueue after Finish.
//
// # Capacity
//
// Capacity must be a nonzero power of two. NewXxxQueue and Build
// return ErrInvalidCapacity otherwise; capacity is never rounded.
//
// # Memory ordering
//
// All four queue types share one protocol: a producer claims ticket
// t = tail.FetchAdd(1) (sequentially consistent), waits until slot
// t&mask's sequence equals t, stores the payload, then publishes
// t+1 (release). A consumer claims h = head.FetchAdd(1) (relaxed),
// waits until slot h&mask's sequence equals h+1, extracts the
// payload, then publishes h+capacity (release), making the slot ready
// for the producer one lap later.
package evenk
