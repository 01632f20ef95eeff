// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package breeding_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittiesd/breeding"
	"github.com/bitmark-inc/kittiesd/kitty"
)

func fill(b byte) kitty.DNA {
	var dna kitty.DNA
	for i := range dna {
		dna[i] = b
	}
	return dna
}

func TestSelectorExtremes(t *testing.T) {
	a := fill(0xaa)
	b := fill(0x55)

	assert.Equal(t, a, breeding.Combine(a, b, fill(0xff)), "all ones selects first parent")
	assert.Equal(t, b, breeding.Combine(a, b, fill(0x00)), "all zeros selects second parent")
}

func TestKnownValue(t *testing.T) {
	a := fill(0xf0)
	b := fill(0x0f)
	selector := fill(0xcc)

	// 1100 1100 & 1111 0000 | 0011 0011 & 0000 1111
	assert.Equal(t, fill(0xc3), breeding.Combine(a, b, selector), "mixed")
}

// every output bit must come from the parent chosen by the selector bit
func TestPerBitSelection(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for n := 0; n < 200; n += 1 {
		var a, b, selector kitty.DNA
		r.Read(a[:])
		r.Read(b[:])
		r.Read(selector[:])

		child := breeding.Combine(a, b, selector)

		for i := 0; i < kitty.DNALength; i += 1 {
			for bit := uint(0); bit < 8; bit += 1 {
				mask := byte(1) << bit
				expected := b[i] & mask
				if 0 != selector[i]&mask {
					expected = a[i] & mask
				}
				if expected != child[i]&mask {
					t.Fatalf("%d: byte %d bit %d: got: %02x  expected: %02x", n, i, bit, child[i]&mask, expected)
				}
			}
		}
	}
}

func TestIdenticalParents(t *testing.T) {
	a := kitty.DNA{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, a, breeding.Combine(a, a, fill(0x5a)), "selector is irrelevant when parents agree")
}
