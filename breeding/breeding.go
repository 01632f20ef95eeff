// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package breeding - mix the DNA of two parents
//
// Each bit of the child comes from the first parent where the
// corresponding selector bit is set and from the second parent where
// it is clear.  No cryptographic property is claimed; the freshness
// of the result depends only on the selector supplied by the caller.
package breeding

import (
	"github.com/bitmark-inc/kittiesd/kitty"
)

// Combine - produce child DNA from two parents and a selector
func Combine(dna1 kitty.DNA, dna2 kitty.DNA, selector kitty.DNA) kitty.DNA {
	var child kitty.DNA
	for i := range child {
		child[i] = combineByte(dna1[i], dna2[i], selector[i])
	}
	return child
}

func combineByte(dna1 byte, dna2 byte, selector byte) byte {
	return (selector & dna1) | (^selector & dna2)
}
