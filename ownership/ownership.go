// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/storage"
)

// from storage/doc.go:
//
// Ownership:
//
//   O ⧺ owner ⧺ link    - node of the owner's doubly linked list
//                         data: prev link ⧺ next link (each padded to 5 bytes)
//                         the 00 link node holds prev = tail, next = head

// Ownership - the per owner list of kitties
type Ownership interface {
	Append(storage.Transaction, *account.Account, kitty.Id)
	Remove(storage.Transaction, *account.Account, kitty.Id) (Item, bool)
	Read(storage.Transaction, *account.Account, Link) (Item, bool)
	Owns(storage.Transaction, *account.Account, kitty.Id) bool
	List(*account.Account, Link, int, bool) ([]kitty.Id, Link, error)
}

type ownership struct {
	pool *storage.PoolHandle
}

// New - ownership lists kept in the given pool
func New(pool *storage.PoolHandle) Ownership {
	return &ownership{
		pool: pool,
	}
}

func key(owner *account.Account, link Link) []byte {
	return append(owner.Bytes(), link.Bytes()...)
}

// Append - make id the new tail of the owner's list
//
// id must not already be in this owner's list
func (o *ownership) Append(trx storage.Transaction, owner *account.Account, id kitty.Id) {
	sentinelKey := key(owner, None)
	sentinel := o.read(trx, sentinelKey)

	trx.Put(o.pool, sentinelKey, Item{Prev: Some(id), Next: sentinel.Next}.pack())

	// for an empty list the old tail is the sentinel just written
	tailKey := key(owner, sentinel.Prev)
	tail := o.read(trx, tailKey)
	trx.Put(o.pool, tailKey, Item{Prev: tail.Prev, Next: Some(id)}.pack())

	trx.Put(o.pool, key(owner, Some(id)), Item{Prev: sentinel.Prev, Next: None}.pack())
}

// Remove - unlink id from the owner's list
//
// returns the removed node, false if the owner did not have id
func (o *ownership) Remove(trx storage.Transaction, owner *account.Account, id kitty.Id) (Item, bool) {
	packed := trx.Take(o.pool, key(owner, Some(id)))
	if nil == packed {
		return Item{}, false
	}
	node := unpack(packed)

	prevKey := key(owner, node.Prev)
	prev := o.read(trx, prevKey)
	trx.Put(o.pool, prevKey, Item{Prev: prev.Prev, Next: node.Next}.pack())

	nextKey := key(owner, node.Next)
	next := o.read(trx, nextKey)
	trx.Put(o.pool, nextKey, Item{Prev: node.Prev, Next: next.Next}.pack())

	return node, true
}

// Read - fetch one node, a nil transaction reads committed data
//
// an absent node reads as {None, None} with false
func (o *ownership) Read(trx storage.Transaction, owner *account.Account, link Link) (Item, bool) {
	packed := o.get(trx, key(owner, link))
	if nil == packed {
		return Item{}, false
	}
	return unpack(packed), true
}

// Owns - check that the owner's list has id, a nil transaction reads committed data
func (o *ownership) Owns(trx storage.Transaction, owner *account.Account, id kitty.Id) bool {
	return nil != o.get(trx, key(owner, Some(id)))
}

func (o *ownership) read(trx storage.Transaction, k []byte) Item {
	packed := trx.Get(o.pool, k)
	if nil == packed {
		return Item{}
	}
	return unpack(packed)
}

func (o *ownership) get(trx storage.Transaction, k []byte) []byte {
	if nil == trx {
		return o.pool.Get(k)
	}
	return trx.Get(o.pool, k)
}

// stored nodes are only written by this package
func unpack(packed []byte) Item {
	item, err := unpackItem(packed)
	if nil != err {
		logger.Panicf("ownership: corrupt item: %x  error: %s", packed, err)
	}
	return item
}
