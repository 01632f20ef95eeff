// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/ownership"
	"github.com/bitmark-inc/kittiesd/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Database, ownership.Ownership) {
	d, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return d, ownership.New(d.Pool.OwnedKitties)
}

func makeOwner(t *testing.T, b byte) *account.Account {
	owner, err := account.New(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		t.Fatalf("make owner error: %s", err)
	}
	return owner
}

// run f inside a committed transaction
func update(t *testing.T, d *storage.Database, f func(storage.Transaction)) {
	trx, err := d.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	f(trx)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func appendIds(t *testing.T, d *storage.Database, o ownership.Ownership, owner *account.Account, ids ...kitty.Id) {
	update(t, d, func(trx storage.Transaction) {
		for _, id := range ids {
			o.Append(trx, owner, id)
		}
	})
}

// every committed key and value stored under an owner
func snapshot(t *testing.T, d *storage.Database, owner *account.Account) map[string]string {
	result := make(map[string]string)
	err := d.Pool.OwnedKitties.NewFetchCursor().Prefix(owner.Bytes()).Map(func(key []byte, value []byte) error {
		result[string(key)] = string(value)
		return nil
	})
	if nil != err {
		t.Fatalf("snapshot error: %s", err)
	}
	return result
}
