// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/bitmark-inc/kittiesd/fault"
)

// sizes of the packed forms
const (
	IdLength  = 4
	DNALength = 16
)

// MaximumId - the count can never reach this value, so it is
// never allocated
const MaximumId = Id(math.MaxUint32)

// Id - sequential identifier, starting at zero and never reused
type Id uint32

// DNA - the attribute data of a kitty, fixed once created
type DNA [DNALength]byte

// Kitty - a stored kitty record
type Kitty struct {
	Id  Id  `json:"id"`
	DNA DNA `json:"dna"`
}

// Bytes - big endian storage form of an id
func (id Id) Bytes() []byte {
	buffer := make([]byte, IdLength)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// IdFromBytes - decode a big endian stored id
func IdFromBytes(buffer []byte) (Id, error) {
	if IdLength != len(buffer) {
		return 0, fault.InvalidKittyId
	}
	return Id(binary.BigEndian.Uint32(buffer)), nil
}

// String - decimal form for the fmt package
func (id Id) String() string {
	return fmt.Sprintf("%d", uint32(id))
}

// DNAFromBytes - copy a stored record into DNA
func DNAFromBytes(dna *DNA, buffer []byte) error {
	if DNALength != len(buffer) {
		return fault.InvalidKittyRecord
	}
	copy(dna[:], buffer)
	return nil
}

// String - hex form for the fmt package
func (dna DNA) String() string {
	return hex.EncodeToString(dna[:])
}

// GoString - hex form for %#v
func (dna DNA) GoString() string {
	return "<DNA:" + hex.EncodeToString(dna[:]) + ">"
}

// MarshalText - convert DNA to its hex JSON form
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DNALength))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - convert a hex JSON string to DNA
func (dna *DNA) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DNALength) != len(s) {
		return fault.InvalidKittyRecord
	}
	_, err := hex.Decode(dna[:], s)
	return err
}
