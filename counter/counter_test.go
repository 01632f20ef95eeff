// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/kittiesd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Uint64())
	}

	if n := c1.Add(6); 10 != n {
		t.Errorf("counter is not 10 after add: %d", n)
	}

	if n := c1.Reset(); 10 != n {
		t.Errorf("reset returned: %d  expected: 10", n)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

// several goroutines incrementing the same counter
func TestConcurrentIncrement(t *testing.T) {

	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const increments = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*increments != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*increments)
	}
}
