// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
)

// structure of a packed link
const (
	linkTagStart  = 0
	linkTagFinish = linkTagStart + 1

	linkIdStart  = linkTagFinish
	linkIdFinish = linkIdStart + kitty.IdLength

	// a none link is only its tag in a key but is padded in an item
	linkLength = linkIdFinish

	itemPrevStart  = 0
	itemPrevFinish = itemPrevStart + linkLength
	itemNextStart  = itemPrevFinish
	itemNextFinish = itemNextStart + linkLength

	itemLength = itemNextFinish
)

// link tags
const (
	noneTag = 0x00
	someTag = 0x01
)

// Link - an optional kitty id
//
// None stands for the sentinel when used in a key and for the
// absence of a neighbour when used in an Item
type Link struct {
	id    kitty.Id
	valid bool
}

// None - the empty link
var None = Link{}

// Some - a link to a kitty
func Some(id kitty.Id) Link {
	return Link{
		id:    id,
		valid: true,
	}
}

// IsNone - true for the empty link
func (link Link) IsNone() bool {
	return !link.valid
}

// Id - the linked kitty, false for None
func (link Link) Id() (kitty.Id, bool) {
	return link.id, link.valid
}

// Bytes - the link as used in a key: 00 or 01 ⧺ id
func (link Link) Bytes() []byte {
	if !link.valid {
		return []byte{noneTag}
	}
	return append([]byte{someTag}, link.id.Bytes()...)
}

func (link Link) String() string {
	if !link.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", link.id)
}

// Item - one node of an owner's list
type Item struct {
	Prev Link
	Next Link
}

// pack an item as prev ⧺ next, each link padded to linkLength
func (item Item) pack() []byte {
	buffer := make([]byte, itemLength)
	packLink(buffer[itemPrevStart:itemPrevFinish], item.Prev)
	packLink(buffer[itemNextStart:itemNextFinish], item.Next)
	return buffer
}

func packLink(buffer []byte, link Link) {
	if !link.valid {
		buffer[linkTagStart] = noneTag
		return
	}
	buffer[linkTagStart] = someTag
	binary.BigEndian.PutUint32(buffer[linkIdStart:linkIdFinish], uint32(link.id))
}

func unpackItem(buffer []byte) (Item, error) {
	if itemLength != len(buffer) {
		return Item{}, fault.InvalidOwnershipItem
	}

	prev, err := unpackLink(buffer[itemPrevStart:itemPrevFinish])
	if nil != err {
		return Item{}, err
	}
	next, err := unpackLink(buffer[itemNextStart:itemNextFinish])
	if nil != err {
		return Item{}, err
	}

	return Item{
		Prev: prev,
		Next: next,
	}, nil
}

func unpackLink(buffer []byte) (Link, error) {
	switch buffer[linkTagStart] {
	case noneTag:
		return None, nil
	case someTag:
		return Some(kitty.Id(binary.BigEndian.Uint32(buffer[linkIdStart:linkIdFinish]))), nil
	default:
		return None, fault.InvalidOwnershipItem
	}
}
