// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/chain"
	"github.com/bitmark-inc/kittiesd/counter"
	"github.com/bitmark-inc/kittiesd/kitty"
	"github.com/bitmark-inc/kittiesd/rpc/fixtures"
	"github.com/bitmark-inc/kittiesd/rpc/kitties"
	"github.com/bitmark-inc/kittiesd/rpc/mocks"
	"github.com/bitmark-inc/kittiesd/rpc/node"
	"github.com/bitmark-inc/kittiesd/rpc/server"
)

func TestCreateRegistersHandlers(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	owner := fixtures.Owner(3)
	r.EXPECT().Create(owner).Return(kitty.Id(11), nil).Times(1)
	r.EXPECT().Count().Return(uint64(12)).Times(1)

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), chain.Testing, "0.1", &count, r)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	var createReply kitties.CreateReply
	err := client.Call("Kitties.Create", &kitties.CreateArguments{Owner: owner}, &createReply)
	assert.Nil(t, err, "wrong Kitties.Create")
	assert.Equal(t, kitty.Id(11), createReply.Id, "wrong id")

	var infoReply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &infoReply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, infoReply.Chain, "wrong chain")
	assert.Equal(t, uint64(12), infoReply.Kitties, "wrong count")
	assert.Equal(t, "0.1", infoReply.Version, "wrong version")
}
