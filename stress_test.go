// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"

	"github.com/liondance/evenk"
	"github.com/liondance/evenk/backoff"
)

// TestSpinQueueStressConcurrent drives SpinQueue under sustained
// concurrent load from many producers and consumers, the same shape
// as the MPMC stress tests this package's queue types are grounded
// on, and checks for loss and duplication.
func TestSpinQueueStressConcurrent(t *testing.T) {
	if evenk.RaceEnabled {
		t.Skip("skip: sequence-based algorithm uses cross-variable memory ordering")
	}

	const (
		numProducers = 8
		numConsumers = 8
		itemsPerProd = 2000
		timeout      = 10 * time.Second
	)

	q, err := evenk.NewSpinQueue[int](64)
	if err != nil {
		t.Fatalf("NewSpinQueue: %v", err)
	}
	expectedTotal := numProducers * itemsPerProd
	seen := make([]atomix.Int32, expectedTotal)

	var wg, producerWg sync.WaitGroup
	var produced, consumed atomix.Int64
	deadline := time.Now().Add(timeout)

	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			b := &backoff.Spin{}
			for i := range itemsPerProd {
				v := id*itemsPerProd + i
				q.EnqueueBackoff(&v, b)
				produced.Add(1)
			}
		}(p)
	}

	for range numConsumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := &backoff.Spin{}
			for consumed.Load() < int64(expectedTotal) {
				if time.Now().After(deadline) {
					return
				}
				var v int
				if q.DequeueBackoff(&v, b) {
					if v >= 0 && v < expectedTotal {
						seen[v].Add(1)
					}
					consumed.Add(1)
				}
			}
		}()
	}

	// Finish releases consumers that claimed a ticket past the last
	// produced element; without it they would spin forever.
	producerWg.Wait()
	q.Finish()
	wg.Wait()

	if got := consumed.Load(); got != int64(expectedTotal) {
		t.Fatalf("consumed %d, want %d (produced=%d)", got, expectedTotal, produced.Load())
	}

	var duplicates, missing int
	for i := range expectedTotal {
		switch seen[i].Load() {
		case 1:
		case 0:
			missing++
		default:
			duplicates++
		}
	}
	if duplicates > 0 {
		t.Errorf("FIFO/no-duplication violation: %d duplicates", duplicates)
	}
	if missing > 0 {
		t.Errorf("no-loss violation: %d values never consumed", missing)
	}
}

// TestCondQueueStressFinishDrains verifies that under concurrent
// load, calling Finish while producers and consumers are both active
// still results in every produced value being drained exactly once,
// and every consumer eventually observes closure.
func TestCondQueueStressFinishDrains(t *testing.T) {
	const (
		numProducers = 4
		numConsumers = 4
		itemsPerProd = 1000
	)

	q, err := evenk.NewCondQueue[int](32)
	if err != nil {
		t.Fatalf("NewCondQueue: %v", err)
	}
	total := numProducers * itemsPerProd

	var producerWg sync.WaitGroup
	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			for i := range itemsPerProd {
				v := id*itemsPerProd + i
				q.Enqueue(&v)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]int, total)
	var consumerWg sync.WaitGroup
	for range numConsumers {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				var v int
				if !q.Dequeue(&v) {
					return
				}
				mu.Lock()
				seen[v]++
				mu.Unlock()
			}
		}()
	}

	producerWg.Wait()
	q.Finish()
	consumerWg.Wait()

	if len(seen) != total {
		t.Fatalf("consumed %d distinct values, want %d", len(seen), total)
	}
	for v, n := range seen {
		if n != 1 {
			t.Errorf("value %d consumed %d times, want 1", v, n)
		}
	}

	if !q.Finished() {
		t.Errorf("Finished(): got false, want true")
	}
	var out int
	if q.Dequeue(&out) {
		t.Errorf("Dequeue after drain: got true, want false")
	}
}
