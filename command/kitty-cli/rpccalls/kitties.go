// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/rpc/kitties"
)

// Create - a new kitty for owner
func (client *Client) Create(owner *account.Account) (*kitties.CreateReply, error) {
	arguments := kitties.CreateArguments{
		Owner: owner,
	}
	reply := &kitties.CreateReply{}
	if err := client.call("Kitties.Create", "Create", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Breed - a new kitty for owner from two parents
func (client *Client) Breed(owner *account.Account, parent1 kitty.Id, parent2 kitty.Id) (*kitties.CreateReply, error) {
	arguments := kitties.BreedArguments{
		Owner:   owner,
		Parent1: parent1,
		Parent2: parent2,
	}
	reply := &kitties.CreateReply{}
	if err := client.call("Kitties.Breed", "Breed", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move a kitty between owners
func (client *Client) Transfer(from *account.Account, to *account.Account, id kitty.Id) (*kitties.TransferReply, error) {
	arguments := kitties.TransferArguments{
		From: from,
		To:   to,
		Id:   id,
	}
	reply := &kitties.TransferReply{}
	if err := client.call("Kitties.Transfer", "Transfer", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Kitty - fetch one kitty
func (client *Client) Kitty(id kitty.Id) (*kitties.GetReply, error) {
	arguments := kitties.GetArguments{
		Id: id,
	}
	reply := &kitties.GetReply{}
	if err := client.call("Kitties.Get", "Kitty", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner   *account.Account
	Start   *kitty.Id
	Count   int
	Reverse bool
}

// Owned - obtain one page of owned kitties
func (client *Client) Owned(ownedConfig *OwnedData) (*kitties.OwnedReply, error) {
	arguments := kitties.OwnedArguments{
		Owner:   ownedConfig.Owner,
		Start:   ownedConfig.Start,
		Count:   ownedConfig.Count,
		Reverse: ownedConfig.Reverse,
	}
	reply := &kitties.OwnedReply{}
	if err := client.call("Kitties.Owned", "Owned", &arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Count - number of kitties ever created
func (client *Client) Count() (*kitties.CountReply, error) {
	reply := &kitties.CountReply{}
	if err := client.call("Kitties.Count", "Count", &kitties.CountArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
