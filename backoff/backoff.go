// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package backoff supplies concrete Backoff policies for evenk's
// bounded queues. Each policy satisfies the single-method Backoff()
// bool contract: false means keep spinning and reload, true means
// escalate to the queue's configured wait strategy.
package backoff

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// Spin never escalates: it busy-waits with spin.Wait's built-in
// pause/pace curve for the lifetime of the call.
type Spin struct {
	sw spin.Wait
}

// Backoff advances the spin curve once and always returns false.
func (b *Spin) Backoff() bool {
	b.sw.Once()
	return false
}

// Yield escalates to the wait strategy immediately after a fixed
// number of runtime.Gosched calls.
type Yield struct {
	Rounds int // escalate after this many calls; 0 escalates immediately
	n      int
}

// Backoff yields to the scheduler until Rounds calls have elapsed,
// then returns true.
func (b *Yield) Backoff() bool {
	if b.n >= b.Rounds {
		return true
	}
	b.n++
	runtime.Gosched()
	return false
}

// Exponential advances spin.Wait's pause curve once per call for Max
// calls, then escalates to the wait strategy. With Max 0 it never
// escalates.
type Exponential struct {
	Max int // escalate after this many calls; 0 never escalates

	sw    spin.Wait
	spins int
}

// Backoff advances the spin curve once per call. Once Max calls have
// elapsed it returns true to escalate.
func (b *Exponential) Backoff() bool {
	if b.Max > 0 && b.spins >= b.Max {
		return true
	}
	b.spins++
	b.sw.Once()
	return false
}

// Composite spins for SpinRounds calls, then yields for YieldRounds
// calls, then escalates to the wait strategy. It models the
// spin-then-yield-then-block staging common to the queue's own
// wait strategies (NoWait, YieldWait, then FutexWait/MutexCondWait).
type Composite struct {
	SpinRounds  int
	YieldRounds int

	sw spin.Wait
	n  int
}

// Backoff runs the spin stage, then the yield stage, then escalates.
func (b *Composite) Backoff() bool {
	if b.n < b.SpinRounds {
		b.n++
		b.sw.Once()
		return false
	}
	if b.n < b.SpinRounds+b.YieldRounds {
		b.n++
		runtime.Gosched()
		return false
	}
	return true
}
