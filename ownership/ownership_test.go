// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/ownership"
	"github.com/bitmark-inc/kittiesd/storage"
)

var (
	none = ownership.None
	some = ownership.Some
)

type nodeExpectation struct {
	link  ownership.Link
	found bool
	item  ownership.Item
}

func checkNodes(t *testing.T, o ownership.Ownership, owner *account.Account, expected []nodeExpectation) {
	for _, e := range expected {
		item, found := o.Read(nil, owner, e.link)
		assert.Equal(t, e.found, found, "node %s existence", e.link)
		assert.Equal(t, e.item, item, "node %s", e.link)
	}
}

func TestAppendThree(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)
	appendIds(t, d, o, owner, 1, 2, 3)

	checkNodes(t, o, owner, []nodeExpectation{
		{none, true, ownership.Item{Prev: some(3), Next: some(1)}},
		{some(1), true, ownership.Item{Prev: none, Next: some(2)}},
		{some(2), true, ownership.Item{Prev: some(1), Next: some(3)}},
		{some(3), true, ownership.Item{Prev: some(2), Next: none}},
	})
}

func TestRemoveInterior(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)
	appendIds(t, d, o, owner, 1, 2, 3)

	update(t, d, func(trx storage.Transaction) {
		item, removed := o.Remove(trx, owner, 2)
		assert.True(t, removed, "remove 2")
		assert.Equal(t, ownership.Item{Prev: some(1), Next: some(3)}, item, "removed node")
	})

	checkNodes(t, o, owner, []nodeExpectation{
		{none, true, ownership.Item{Prev: some(3), Next: some(1)}},
		{some(1), true, ownership.Item{Prev: none, Next: some(3)}},
		{some(2), false, ownership.Item{}},
		{some(3), true, ownership.Item{Prev: some(1), Next: none}},
	})
	assert.False(t, d.Pool.OwnedKitties.Has(append(owner.Bytes(), some(2).Bytes()...)), "node 2 still stored")
}

func TestAppendThenRemoveSingle(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)
	appendIds(t, d, o, owner, 1)

	checkNodes(t, o, owner, []nodeExpectation{
		{none, true, ownership.Item{Prev: some(1), Next: some(1)}},
		{some(1), true, ownership.Item{Prev: none, Next: none}},
	})

	update(t, d, func(trx storage.Transaction) {
		_, removed := o.Remove(trx, owner, 1)
		assert.True(t, removed, "remove 1")
	})

	checkNodes(t, o, owner, []nodeExpectation{
		{none, true, ownership.Item{Prev: none, Next: none}},
		{some(1), false, ownership.Item{}},
	})
}

func TestAppendAfterEmptied(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)
	appendIds(t, d, o, owner, 1)
	update(t, d, func(trx storage.Transaction) {
		o.Remove(trx, owner, 1)
	})
	appendIds(t, d, o, owner, 7, 8)

	checkNodes(t, o, owner, []nodeExpectation{
		{none, true, ownership.Item{Prev: some(8), Next: some(7)}},
		{some(7), true, ownership.Item{Prev: none, Next: some(8)}},
		{some(8), true, ownership.Item{Prev: some(7), Next: none}},
	})
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)

	update(t, d, func(trx storage.Transaction) {
		_, removed := o.Remove(trx, owner, 5)
		assert.False(t, removed, "remove from empty list")
	})
	assert.Equal(t, 0, len(snapshot(t, d, owner)), "empty list gained data")

	appendIds(t, d, o, owner, 1, 2, 3)
	before := snapshot(t, d, owner)

	update(t, d, func(trx storage.Transaction) {
		_, removed := o.Remove(trx, owner, 5)
		assert.False(t, removed, "remove absent")
	})
	assert.Equal(t, before, snapshot(t, d, owner), "list changed by absent remove")
}

func TestOwnerIsolation(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner1 := makeOwner(t, 1)
	owner2 := makeOwner(t, 2)

	appendIds(t, d, o, owner2, 10, 11, 12)
	before := snapshot(t, d, owner2)

	appendIds(t, d, o, owner1, 1, 2, 11, 3)
	update(t, d, func(trx storage.Transaction) {
		o.Remove(trx, owner1, 11)
		o.Remove(trx, owner1, 1)
		o.Remove(trx, owner1, 12)
	})

	assert.Equal(t, before, snapshot(t, d, owner2), "other owner changed")
	assert.True(t, o.Owns(nil, owner2, 11), "other owner lost 11")
	assert.False(t, o.Owns(nil, owner1, 11), "owner still has 11")
	assert.False(t, o.Owns(nil, owner1, 12), "owner never had 12")
}

func TestReadInsideTransaction(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)

	trx, err := d.NewDBTransaction()
	assert.Nil(t, err, "begin")
	o.Append(trx, owner, 4)
	assert.True(t, o.Owns(trx, owner, 4), "not visible in transaction")
	assert.False(t, o.Owns(nil, owner, 4), "visible before commit")
	trx.Abort()

	assert.False(t, o.Owns(nil, owner, 4), "visible after abort")
	_, found := o.Read(nil, owner, none)
	assert.False(t, found, "sentinel written after abort")
}

func TestConstantAccessCount(t *testing.T) {
	d, o := setup(t)
	defer d.Close()

	owner := makeOwner(t, 1)

	for _, length := range []int{0, 1, 2, 50} {
		ids := make([]kitty.Id, length)
		base := kitty.Id(1000 * (length + 1))
		for i := range ids {
			ids[i] = base + kitty.Id(i)
		}
		appendIds(t, d, o, owner, ids...)

		trx, err := d.NewDBTransaction()
		assert.Nil(t, err, "begin")
		o.Append(trx, owner, base-1)
		reads, writes := trx.Accesses()
		assert.Equal(t, uint64(2), reads, "append reads for length %d", length)
		assert.Equal(t, uint64(3), writes, "append writes for length %d", length)
		assert.Nil(t, trx.Commit(), "commit")

		for _, id := range []kitty.Id{base - 1, base + kitty.Id(length/2)} {
			if id >= base+kitty.Id(length) {
				continue
			}
			trx, err = d.NewDBTransaction()
			assert.Nil(t, err, "begin")
			_, removed := o.Remove(trx, owner, id)
			assert.True(t, removed, "remove %d", id)
			reads, writes = trx.Accesses()
			assert.Equal(t, uint64(3), reads, "remove reads for length %d", length)
			assert.Equal(t, uint64(3), writes, "remove writes for length %d", length)
			assert.Nil(t, trx.Commit(), "commit")
		}

		trx, err = d.NewDBTransaction()
		assert.Nil(t, err, "begin")
		o.Remove(trx, owner, kitty.MaximumId)
		reads, writes = trx.Accesses()
		assert.Equal(t, uint64(1), reads, "absent remove reads")
		assert.Equal(t, uint64(0), writes, "absent remove writes")
		trx.Abort()
	}
}
