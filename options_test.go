// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk_test

import (
	"errors"
	"testing"

	"github.com/liondance/evenk"
)

func TestBuildCapacityRejection(t *testing.T) {
	tests := []struct {
		capacity uint32
		wantErr  bool
	}{
		{0, true},
		{3, true},
		{5, true},
		{100, true},
		{1, false},
		{2, false},
		{4, false},
		{1024, false},
		{65536, false},
	}

	for _, tt := range tests {
		q, err := evenk.Build[int](tt.capacity, evenk.Spin)
		if tt.wantErr {
			if !errors.Is(err, evenk.ErrInvalidCapacity) {
				t.Errorf("Build(%d): got err %v, want ErrInvalidCapacity", tt.capacity, err)
			}
			if q != nil {
				t.Errorf("Build(%d): got non-nil queue on error", tt.capacity)
			}
			continue
		}
		if err != nil {
			t.Errorf("Build(%d): got %v, want nil", tt.capacity, err)
			continue
		}
		if got := q.Cap(); got != int(tt.capacity) {
			t.Errorf("Build(%d).Cap(): got %d, want %d", tt.capacity, got, tt.capacity)
		}
	}
}

func TestBuildSelectsWaitStrategy(t *testing.T) {
	strategies := []evenk.WaitStrategy{evenk.Spin, evenk.Yield, evenk.Futex, evenk.Cond}
	for _, ws := range strategies {
		q, err := evenk.Build[int](8, ws)
		if err != nil {
			t.Fatalf("Build(8, %v): %v", ws, err)
		}
		v := 42
		q.Enqueue(&v)
		var out int
		if !q.Dequeue(&out) {
			t.Fatalf("Dequeue after Enqueue: got false, want true")
		}
		if out != v {
			t.Errorf("Dequeue: got %d, want %d", out, v)
		}
	}
}

func TestNewSpinQueueRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := evenk.NewSpinQueue[int](6); !errors.Is(err, evenk.ErrInvalidCapacity) {
		t.Errorf("NewSpinQueue(6): got %v, want ErrInvalidCapacity", err)
	}
}

func TestNewYieldQueueRejectsZero(t *testing.T) {
	if _, err := evenk.NewYieldQueue[int](0); !errors.Is(err, evenk.ErrInvalidCapacity) {
		t.Errorf("NewYieldQueue(0): got %v, want ErrInvalidCapacity", err)
	}
}

func TestNewFutexQueueAcceptsPowerOfTwo(t *testing.T) {
	q, err := evenk.NewFutexQueue[int](32)
	if err != nil {
		t.Fatalf("NewFutexQueue(32): %v", err)
	}
	if got := q.Cap(); got != 32 {
		t.Errorf("Cap(): got %d, want 32", got)
	}
}

func TestNewCondQueueAcceptsOne(t *testing.T) {
	q, err := evenk.NewCondQueue[int](1)
	if err != nil {
		t.Fatalf("NewCondQueue(1): %v", err)
	}
	if got := q.Cap(); got != 1 {
		t.Errorf("Cap(): got %d, want 1", got)
	}
}
