// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/kittiesd/counter"
)

// Transaction - all writes of one operation, applied together or not at all
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Take(*PoolHandle, []byte) []byte
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
	Accesses() (reads uint64, writes uint64)
}

type transaction struct {
	access Access
	reads  counter.Counter
	writes counter.Counter
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Begin() error {
	err := t.access.Begin()
	if nil != err {
		return err
	}
	t.reads.Reset()
	t.writes.Reset()
	return nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.writes.Increment()
	handle.put(key, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	t.writes.Increment()
	handle.putN(key, value)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.writes.Increment()
	handle.remove(key)
}

// Take - read a value and delete its key, nil if absent
func (t *transaction) Take(handle *PoolHandle, key []byte) []byte {
	value := t.Get(handle, key)
	if nil != value {
		t.Delete(handle, key)
	}
	return value
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	t.reads.Increment()
	return handle.get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(handle, key))
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}

func (t *transaction) InUse() bool {
	return t.access.InUse()
}

// Accesses - number of point reads and writes since Begin
func (t *transaction) Accesses() (uint64, uint64) {
	return t.reads.Uint64(), t.writes.Uint64()
}
