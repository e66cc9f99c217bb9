// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package evenk

// futexWaitState falls back to the mutex/condition-variable strategy
// on non-Linux targets. Go exposes no portable wait-on-address
// syscall outside Linux's futex, and none of the retrieved examples
// ship one either — the one pure-Go emulated futex found in the pack
// (twmb-dash/experimental/futex) heap-allocates a bucket/node per
// wait, which is a worse fit for a per-slot hot path than simply
// using MutexCondWait's primitive directly. See DESIGN.md.
type futexWaitState = mutexCondWaitState
