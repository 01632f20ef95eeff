// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/storage"
)

// the id the next stored kitty must have
func (r *Registry) nextId(trx storage.Transaction) (kitty.Id, error) {
	count, _ := trx.GetN(r.db.Pool.KittiesCount, nil)
	if count >= uint64(kitty.MaximumId) {
		return 0, fault.CountOverflow
	}
	return kitty.Id(count), nil
}

// id must be the value just returned by nextId
func (r *Registry) store(trx storage.Transaction, id kitty.Id, dna kitty.DNA) {
	trx.Put(r.db.Pool.Kitties, id.Bytes(), dna[:])
	trx.PutN(r.db.Pool.KittiesCount, nil, uint64(id)+1)
}

func (r *Registry) lookup(trx storage.Transaction, id kitty.Id) (kitty.DNA, error) {
	var dna kitty.DNA
	packed := trx.Get(r.db.Pool.Kitties, id.Bytes())
	if nil == packed {
		return dna, fault.UnknownKitty
	}
	err := kitty.DNAFromBytes(&dna, packed)
	return dna, err
}
