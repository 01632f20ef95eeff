// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - create, breed and transfer kitties
//
// Every mutating call is serialised and runs inside a single storage
// transaction which is committed only if the whole call succeeds.
package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/breeding"
	"github.com/bitmark-inc/kittiesd/entropy"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/ownership"
	"github.com/bitmark-inc/kittiesd/storage"
)

// Registry - the kitties of one database
type Registry struct {
	sync.RWMutex
	log    *logger.L
	db     *storage.Database
	source entropy.Source
	owners ownership.Ownership
}

// New - a registry over an open database
func New(db *storage.Database, source entropy.Source) *Registry {
	return &Registry{
		log:    logger.New("registry"),
		db:     db,
		source: source,
		owners: ownership.New(db.Pool.OwnedKitties),
	}
}

// Create - a new kitty with random DNA for owner
func (r *Registry) Create(owner *account.Account) (kitty.Id, error) {
	r.Lock()
	defer r.Unlock()

	var id kitty.Id
	err := r.update(func(trx storage.Transaction) error {
		var err error
		id, err = r.nextId(trx)
		if nil != err {
			return err
		}

		dna := r.source.Sample(owner.Bytes(), id.Bytes())
		r.store(trx, id, dna)
		r.owners.Append(trx, owner, id)
		return nil
	})
	if nil != err {
		r.log.Debugf("create for: %s  error: %s", owner, err)
		return 0, err
	}

	r.log.Infof("created: %d  owner: %s", id, owner)
	return id, nil
}

// Breed - a new kitty for owner mixing the DNA of two others
func (r *Registry) Breed(owner *account.Account, parent1 kitty.Id, parent2 kitty.Id) (kitty.Id, error) {
	r.Lock()
	defer r.Unlock()

	var id kitty.Id
	err := r.update(func(trx storage.Transaction) error {
		dna1, err := r.lookup(trx, parent1)
		if nil != err {
			return err
		}
		dna2, err := r.lookup(trx, parent2)
		if nil != err {
			return err
		}
		if parent1 == parent2 {
			return fault.SameParent
		}

		id, err = r.nextId(trx)
		if nil != err {
			return err
		}

		selector := r.source.Sample(owner.Bytes(), id.Bytes(), parent1.Bytes(), parent2.Bytes())
		r.store(trx, id, breeding.Combine(dna1, dna2, selector))
		r.owners.Append(trx, owner, id)
		return nil
	})
	if nil != err {
		r.log.Debugf("breed: %d × %d  error: %s", parent1, parent2, err)
		return 0, err
	}

	r.log.Infof("bred: %d  from: %d × %d  owner: %s", id, parent1, parent2, owner)
	return id, nil
}

// Transfer - move a kitty between owners
func (r *Registry) Transfer(from *account.Account, to *account.Account, id kitty.Id) error {
	r.Lock()
	defer r.Unlock()

	err := r.update(func(trx storage.Transaction) error {
		if _, removed := r.owners.Remove(trx, from, id); !removed {
			return fault.NotOwner
		}
		r.owners.Append(trx, to, id)
		return nil
	})
	if nil != err {
		r.log.Debugf("transfer: %d  from: %s  error: %s", id, from, err)
		return err
	}

	r.log.Infof("transferred: %d  from: %s  to: %s", id, from, to)
	return nil
}

// Kitty - fetch a committed kitty
func (r *Registry) Kitty(id kitty.Id) (kitty.Kitty, error) {
	r.RLock()
	defer r.RUnlock()

	k := kitty.Kitty{
		Id: id,
	}
	packed := r.db.Pool.Kitties.Get(id.Bytes())
	if nil == packed {
		return k, fault.UnknownKitty
	}
	err := kitty.DNAFromBytes(&k.DNA, packed)
	return k, err
}

// Count - number of kitties ever created
func (r *Registry) Count() uint64 {
	r.RLock()
	defer r.RUnlock()

	count, _ := r.db.Pool.KittiesCount.GetN(nil)
	return count
}

// Owns - check that owner currently has the kitty
func (r *Registry) Owns(owner *account.Account, id kitty.Id) bool {
	r.RLock()
	defer r.RUnlock()

	return r.owners.Owns(nil, owner, id)
}

// Owned - a page of an owner's kitties in the order they were received
//
// start None begins at the oldest, or the newest when reverse is set;
// the returned link starts the following page and is None at the end
func (r *Registry) Owned(owner *account.Account, start ownership.Link, count int, reverse bool) ([]kitty.Kitty, ownership.Link, error) {
	r.RLock()
	defer r.RUnlock()

	ids, next, err := r.owners.List(owner, start, count, reverse)
	if nil != err {
		return nil, ownership.None, err
	}

	kitties := make([]kitty.Kitty, 0, len(ids))
	for _, id := range ids {
		k := kitty.Kitty{
			Id: id,
		}
		packed := r.db.Pool.Kitties.Get(id.Bytes())
		if err := kitty.DNAFromBytes(&k.DNA, packed); nil != err {
			logger.Panicf("registry: owned kitty: %d has no record: %s", id, err)
		}
		kitties = append(kitties, k)
	}
	return kitties, next, nil
}

// run f in a transaction, committed only if f succeeds
func (r *Registry) update(f func(storage.Transaction) error) error {
	trx, err := r.db.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	return trx.Commit()
}
