// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy - source of pseudo-random DNA
//
// A sample is the keyed BLAKE2b-128 of the call context, the key
// being a seed fixed for the life of the node.  Samples are
// deterministic for a given seed and context and cannot be predicted
// without the seed.
package entropy

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
)

// SeedLength - number of bytes in a seed
const SeedLength = 32

// Source - supplier of DNA-sized samples
type Source interface {
	Sample(context ...[]byte) kitty.DNA
}

type blake2Source struct {
	seed []byte
}

// New - create a source from a seed
func New(seed []byte) (Source, error) {
	if SeedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}
	s := &blake2Source{
		seed: make([]byte, SeedLength),
	}
	copy(s.seed, seed)
	return s, nil
}

// NewFromHex - create a source from a hex encoded seed
func NewFromHex(hexSeed string) (Source, error) {
	seed, err := hex.DecodeString(hexSeed)
	if nil != err {
		return nil, err
	}
	return New(seed)
}

// NewSeed - generate a random seed
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedLength)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	return seed, nil
}

// Sample - hash the concatenated context under the seed
func (s *blake2Source) Sample(context ...[]byte) kitty.DNA {
	h, err := blake2b.New(kitty.DNALength, s.seed)
	if nil != err {
		// only possible for an invalid size or key, both fixed above
		panic(err)
	}
	for _, c := range context {
		h.Write(c)
	}

	var dna kitty.DNA
	copy(dna[:], h.Sum(nil))
	return dna
}
