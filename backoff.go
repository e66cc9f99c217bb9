// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

// Backoff is the queue's sole plug-in surface. It is invoked by a
// waiter that has just observed its slot is not yet ready.
//
// Backoff reports false when it has consumed some CPU or time and the
// caller should retry a plain load of the slot's sequence; it reports
// true when the caller should give up active waiting and block on the
// queue's wait strategy instead.
//
// A Backoff may hold mutable per-waiter state (for example a counter
// driving linear or exponential growth); callers are expected to use
// one Backoff instance per in-flight call, not share one across
// concurrent waiters, unless a specific implementation documents
// itself as safe for concurrent use.
//
// evenk defines only this contract. Concrete policies — spin, yield,
// exponential, composite — live in the backoff subpackage, consumed
// as an external type rather than defined inline.
type Backoff interface {
	Backoff() bool
}
