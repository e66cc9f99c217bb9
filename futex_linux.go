// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package evenk

import (
	"sync/atomic"
	"unsafe"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/unix"
)

// futexWaitState is the FutexWait slot strategy on Linux: the
// sequence is parked and woken with the kernel's wait-on-address
// primitive (FUTEX_WAIT/FUTEX_WAKE).
//
// The sequence is stored as sync/atomic.Uint32 rather than
// code.hybscloud.com/atomix.Uint32: the futex syscall operates on the
// raw memory address of the word it watches, and sync/atomic.Uint32
// is documented to have the same memory layout as a bare uint32 at
// offset zero, which unsafe.Pointer(&s.seq) can be handed to the
// kernel directly. atomix does not expose an address accessor, so the
// one field that truly needs its address exposed uses the stdlib type
// instead.
type futexWaitState struct {
	seq       atomic.Uint32
	waitCount atomix.Uint32
}

const futexWakeAll = 0x7fffffff

// FUTEX_WAIT and FUTEX_WAKE are fixed Linux kernel futex(2) op codes
// (linux/futex.h). golang.org/x/sys/unix does not export them, only
// the newer futex_wait/futex_wake syscall numbers, so they are defined
// locally here.
const (
	futexOpWait = 0
	futexOpWake = 1
)

func (s *futexWaitState) init(v uint32)  { s.seq.Store(v) }
func (s *futexWaitState) load() uint32   { return s.seq.Load() }
func (s *futexWaitState) store(v uint32) { s.seq.Store(v) }

// waitAndLoad blocks on FUTEX_WAIT while the sequence still equals
// expected, then returns the refreshed sequence. Spurious wakeups are
// permitted by the contract and handled by the caller's match loop.
func (s *futexWaitState) waitAndLoad(expected uint32) uint32 {
	s.waitCount.AddRelaxed(1)
	addr := (*uint32)(unsafe.Pointer(&s.seq))
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX, uintptr(unsafe.Pointer(addr)),
		uintptr(futexOpWait), uintptr(expected), 0, 0, 0)
	s.waitCount.AddRelaxed(^uint32(0)) // -1
	return s.load()
}

// storeAndWake publishes the new sequence, then wakes any futex
// waiters. The store-then-read-wait_count order here must be ordered
// against a waiter's increment-then-check-sequence order; Go's
// sync/atomic operations are documented as sequentially consistent
// with respect to one another (Go 1.19+ memory model), so no separate
// fence instruction needs inserting.
func (s *futexWaitState) storeAndWake(v uint32) {
	s.store(v)
	if s.waitCount.LoadRelaxed() != 0 {
		s.wake()
	}
}

func (s *futexWaitState) wake() {
	addr := (*uint32)(unsafe.Pointer(&s.seq))
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX, uintptr(unsafe.Pointer(addr)),
		uintptr(futexOpWake), futexWakeAll, 0, 0, 0)
}
