// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/ownership"
	"github.com/bitmark-inc/kittiesd/rpc/ratelimit"
)

const (
	rateLimitKitties = 200
	rateBurstKitties = 100

	maximumOwnedCount = 100
)

// Registry - the kitty operations served over RPC
type Registry interface {
	Create(*account.Account) (kitty.Id, error)
	Breed(*account.Account, kitty.Id, kitty.Id) (kitty.Id, error)
	Transfer(*account.Account, *account.Account, kitty.Id) error
	Kitty(kitty.Id) (kitty.Kitty, error)
	Count() uint64
	Owns(*account.Account, kitty.Id) bool
	Owned(*account.Account, ownership.Link, int, bool) ([]kitty.Kitty, ownership.Link, error)
}

// Kitties - type for the RPC
type Kitties struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsTestingChain func() bool
	Registry       Registry
}

// New - the Kitties RPC handler
func New(log *logger.L, isTestingChain func() bool, registry Registry) *Kitties {
	return &Kitties{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitKitties, rateBurstKitties),
		IsTestingChain: isTestingChain,
		Registry:       registry,
	}
}

// all accounts must be present and on this node's network
func (k *Kitties) checkAccounts(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a {
			return fault.MissingParameters
		}
		if a.IsTesting() != k.IsTestingChain() {
			return fault.WrongNetworkForPublicKey
		}
	}
	return nil
}

// Create a kitty
// --------------

// CreateArguments - arguments for create RPC
type CreateArguments struct {
	Owner *account.Account `json:"owner"`
}

// CreateReply - result from create and breed RPCs
type CreateReply struct {
	Id kitty.Id `json:"id"`
}

// Create - a new kitty with random DNA
func (k *Kitties) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Create: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkAccounts(arguments.Owner); nil != err {
		return err
	}

	id, err := k.Registry.Create(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// Breed two kitties
// -----------------

// BreedArguments - arguments for breed RPC
type BreedArguments struct {
	Owner   *account.Account `json:"owner"`
	Parent1 kitty.Id         `json:"parent1"`
	Parent2 kitty.Id         `json:"parent2"`
}

// Breed - a new kitty for owner from two parents
func (k *Kitties) Breed(arguments *BreedArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Breed: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkAccounts(arguments.Owner); nil != err {
		return err
	}

	id, err := k.Registry.Breed(arguments.Owner, arguments.Parent1, arguments.Parent2)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// Transfer a kitty
// ----------------

// TransferArguments - arguments for transfer RPC
type TransferArguments struct {
	From *account.Account `json:"from"`
	To   *account.Account `json:"to"`
	Id   kitty.Id         `json:"id"`
}

// TransferReply - result from transfer RPC
type TransferReply struct {
	Id    kitty.Id         `json:"id"`
	Owner *account.Account `json:"owner"`
}

// Transfer - move a kitty to a new owner
func (k *Kitties) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	k.Log.Infof("Kitties.Transfer: %+v", arguments)

	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkAccounts(arguments.From, arguments.To); nil != err {
		return err
	}

	err := k.Registry.Transfer(arguments.From, arguments.To, arguments.Id)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Owner = arguments.To
	return nil
}

// Fetch a kitty
// -------------

// GetArguments - arguments for get RPC
type GetArguments struct {
	Id kitty.Id `json:"id"`
}

// GetReply - result from get RPC
type GetReply struct {
	Kitty kitty.Kitty `json:"kitty"`
}

// Get - one kitty's record
func (k *Kitties) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := k.Registry.Kitty(arguments.Id)
	if nil != err {
		return err
	}

	reply.Kitty = record
	return nil
}

// List an owner's kitties
// -----------------------

// OwnedArguments - arguments for owned RPC
type OwnedArguments struct {
	Owner   *account.Account `json:"owner"`
	Start   *kitty.Id        `json:"start,omitempty"`
	Count   int              `json:"count"`
	Reverse bool             `json:"reverse"`
}

// OwnedReply - result from owned RPC
//
// Next is absent when the list is exhausted
type OwnedReply struct {
	Kitties []kitty.Kitty `json:"kitties"`
	Next    *kitty.Id     `json:"next,omitempty"`
}

// Owned - a page of an owner's kitties, oldest first unless reversed
func (k *Kitties) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumOwnedCount); nil != err {
		return err
	}

	k.Log.Debugf("Kitties.Owned: %+v", arguments)

	if err := k.checkAccounts(arguments.Owner); nil != err {
		return err
	}

	start := ownership.None
	if nil != arguments.Start {
		start = ownership.Some(*arguments.Start)
	}

	records, next, err := k.Registry.Owned(arguments.Owner, start, arguments.Count, arguments.Reverse)
	if nil != err {
		return err
	}

	reply.Kitties = records
	if id, ok := next.Id(); ok {
		reply.Next = &id
	}
	return nil
}

// Kitty count
// -----------

// CountArguments - empty arguments for count RPC
type CountArguments struct{}

// CountReply - result from count RPC
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - total number of kitties ever created
func (k *Kitties) Count(_ *CountArguments, reply *CountReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	reply.Count = k.Registry.Count()
	return nil
}

// Ownership check
// ---------------

// OwnsArguments - arguments for owns RPC
type OwnsArguments struct {
	Owner *account.Account `json:"owner"`
	Id    kitty.Id         `json:"id"`
}

// OwnsReply - result from owns RPC
type OwnsReply struct {
	Owns bool `json:"owns"`
}

// Owns - check whether an account currently has a kitty
func (k *Kitties) Owns(arguments *OwnsArguments, reply *OwnsReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}
	if err := k.checkAccounts(arguments.Owner); nil != err {
		return err
	}

	reply.Owns = k.Registry.Owns(arguments.Owner, arguments.Id)
	return nil
}
