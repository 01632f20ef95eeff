// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitties_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/ownership"
	"github.com/bitmark-inc/kittiesd/rpc/fixtures"
	"github.com/bitmark-inc/kittiesd/rpc/kitties"
	"github.com/bitmark-inc/kittiesd/rpc/mocks"
)

func setup(t *testing.T) (*kitties.Kitties, *mocks.MockRegistry, *gomock.Controller) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)
	k := kitties.New(logger.New(fixtures.LogCategory), func() bool { return true }, r)
	return k, r, ctl
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestKittiesCreate(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner(1)
	r.EXPECT().Create(owner).Return(kitty.Id(7), nil).Times(1)

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, kitty.Id(7), reply.Id, "wrong id")
}

func TestKittiesCreateErrors(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	r.EXPECT().Create(gomock.Any()).Return(kitty.Id(0), fault.CountOverflow).Times(1)

	var reply kitties.CreateReply
	err := k.Create(&kitties.CreateArguments{Owner: nil}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing owner")

	err = k.Create(&kitties.CreateArguments{Owner: fixtures.LiveOwner(1)}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live owner on test chain")

	err = k.Create(&kitties.CreateArguments{Owner: fixtures.Owner(1)}, &reply)
	assert.Equal(t, fault.CountOverflow, err, "registry error")
}

func TestKittiesBreed(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner(2)
	r.EXPECT().Breed(owner, kitty.Id(1), kitty.Id(2)).Return(kitty.Id(3), nil).Times(1)
	r.EXPECT().Breed(owner, kitty.Id(1), kitty.Id(1)).Return(kitty.Id(0), fault.SameParent).Times(1)

	var reply kitties.CreateReply
	err := k.Breed(&kitties.BreedArguments{Owner: owner, Parent1: 1, Parent2: 2}, &reply)
	assert.Nil(t, err, "wrong Breed")
	assert.Equal(t, kitty.Id(3), reply.Id, "wrong id")

	err = k.Breed(&kitties.BreedArguments{Owner: owner, Parent1: 1, Parent2: 1}, &reply)
	assert.Equal(t, fault.SameParent, err, "same parent")
}

func TestKittiesTransfer(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	from := fixtures.Owner(1)
	to := fixtures.Owner(2)
	r.EXPECT().Transfer(from, to, kitty.Id(5)).Return(nil).Times(1)
	r.EXPECT().Transfer(to, from, kitty.Id(5)).Return(fault.NotOwner).Times(1)

	var reply kitties.TransferReply
	err := k.Transfer(&kitties.TransferArguments{From: from, To: to, Id: 5}, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, kitty.Id(5), reply.Id, "wrong id")
	assert.Equal(t, to, reply.Owner, "wrong owner")

	err = k.Transfer(&kitties.TransferArguments{From: to, To: from, Id: 5}, &reply)
	assert.Equal(t, fault.NotOwner, err, "not owner")

	err = k.Transfer(&kitties.TransferArguments{From: from, Id: 5}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing receiver")

	err = k.Transfer(&kitties.TransferArguments{From: from, To: fixtures.LiveOwner(2), Id: 5}, &reply)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "live receiver")
}

func TestKittiesGet(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	record := kitty.Kitty{Id: 4, DNA: kitty.DNA{1, 2, 3}}
	r.EXPECT().Kitty(kitty.Id(4)).Return(record, nil).Times(1)
	r.EXPECT().Kitty(kitty.Id(9)).Return(kitty.Kitty{Id: 9}, fault.UnknownKitty).Times(1)

	var reply kitties.GetReply
	err := k.Get(&kitties.GetArguments{Id: 4}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply.Kitty, "wrong kitty")

	err = k.Get(&kitties.GetArguments{Id: 9}, &reply)
	assert.Equal(t, fault.UnknownKitty, err, "unknown kitty")
}

func TestKittiesOwned(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner(1)
	page1 := []kitty.Kitty{{Id: 1}, {Id: 2}}
	page2 := []kitty.Kitty{{Id: 3}}

	gomock.InOrder(
		r.EXPECT().Owned(owner, ownership.None, 2, false).Return(page1, ownership.Some(3), nil).Times(1),
		r.EXPECT().Owned(owner, ownership.Some(3), 2, false).Return(page2, ownership.None, nil).Times(1),
	)

	var reply kitties.OwnedReply
	err := k.Owned(&kitties.OwnedArguments{Owner: owner, Count: 2}, &reply)
	assert.Nil(t, err, "first page")
	assert.Equal(t, page1, reply.Kitties, "first page kitties")
	assert.NotNil(t, reply.Next, "first page next")
	assert.Equal(t, kitty.Id(3), *reply.Next, "first page next")

	var reply2 kitties.OwnedReply
	err = k.Owned(&kitties.OwnedArguments{Owner: owner, Start: reply.Next, Count: 2}, &reply2)
	assert.Nil(t, err, "second page")
	assert.Equal(t, page2, reply2.Kitties, "second page kitties")
	assert.Nil(t, reply2.Next, "list exhausted")
}

func TestKittiesOwnedInvalidCount(t *testing.T) {
	k, _, ctl := setup(t)
	defer teardown(ctl)

	var reply kitties.OwnedReply
	err := k.Owned(&kitties.OwnedArguments{Owner: fixtures.Owner(1), Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	err = k.Owned(&kitties.OwnedArguments{Owner: fixtures.Owner(1), Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "count above maximum")
}

func TestKittiesCountAndOwns(t *testing.T) {
	k, r, ctl := setup(t)
	defer teardown(ctl)

	owner := fixtures.Owner(1)
	r.EXPECT().Count().Return(uint64(12)).Times(1)
	r.EXPECT().Owns(owner, kitty.Id(3)).Return(true).Times(1)

	var countReply kitties.CountReply
	err := k.Count(&kitties.CountArguments{}, &countReply)
	assert.Nil(t, err, "wrong Count")
	assert.Equal(t, uint64(12), countReply.Count, "wrong count")

	var ownsReply kitties.OwnsReply
	err = k.Owns(&kitties.OwnsArguments{Owner: owner, Id: 3}, &ownsReply)
	assert.Nil(t, err, "wrong Owns")
	assert.True(t, ownsReply.Owns, "wrong owns")
}
