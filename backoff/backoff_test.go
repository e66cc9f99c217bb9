// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package backoff_test

import (
	"testing"

	"github.com/liondance/evenk/backoff"
)

func TestSpinNeverEscalates(t *testing.T) {
	b := &backoff.Spin{}
	for i := range 1000 {
		if b.Backoff() {
			t.Fatalf("Backoff() at call %d: got true, want false", i)
		}
	}
}

func TestYieldEscalatesAfterRounds(t *testing.T) {
	b := &backoff.Yield{Rounds: 3}
	for i := range 3 {
		if b.Backoff() {
			t.Fatalf("Backoff() at call %d: got true, want false", i)
		}
	}
	if !b.Backoff() {
		t.Fatalf("Backoff() after Rounds exhausted: got false, want true")
	}
	if !b.Backoff() {
		t.Fatalf("Backoff() stays escalated: got false, want true")
	}
}

func TestYieldEscalatesImmediatelyWhenRoundsZero(t *testing.T) {
	b := &backoff.Yield{}
	if !b.Backoff() {
		t.Fatalf("Backoff() with Rounds=0: got false, want true")
	}
}

func TestExponentialEscalatesAtMax(t *testing.T) {
	b := &backoff.Exponential{Max: 5}
	for i := range 5 {
		if b.Backoff() {
			t.Fatalf("Backoff() at call %d: got true, want false", i)
		}
	}
	if !b.Backoff() {
		t.Fatalf("Backoff() after Max exhausted: got false, want true")
	}
}

func TestExponentialNeverEscalatesWhenMaxZero(t *testing.T) {
	b := &backoff.Exponential{}
	for i := range 1000 {
		if b.Backoff() {
			t.Fatalf("Backoff() at call %d: got true, want false", i)
		}
	}
}

func TestCompositeStagesInOrder(t *testing.T) {
	b := &backoff.Composite{SpinRounds: 2, YieldRounds: 3}
	want := []bool{false, false, false, false, false, true, true}
	for i, w := range want {
		if got := b.Backoff(); got != w {
			t.Fatalf("Backoff() at call %d: got %v, want %v", i, got, w)
		}
	}
}
