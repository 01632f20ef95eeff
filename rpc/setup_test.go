// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittiesd/chain"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/rpc/fixtures"
	"github.com/bitmark-inc/kittiesd/rpc/kitties"
	"github.com/bitmark-inc/kittiesd/rpc/listeners"
	"github.com/bitmark-inc/kittiesd/rpc/mocks"
)

func TestInitialiseFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Count().Return(uint64(3)).Times(1)

	cer, key := fixtures.CertificatePair()
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        cer,
		PrivateKey:         key,
	}

	err := Initialise(&configuration, chain.Testing, "0.1", r)
	assert.Nil(t, err, "wrong Initialise")

	err = Initialise(&configuration, chain.Testing, "0.1", r)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")

	addr := globalData.listener.Addresses()[0].String()
	conn, err := tls.Dial("tcp", addr, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply kitties.CountReply
	err = client.Call("Kitties.Count", &kitties.CountArguments{}, &reply)
	assert.Nil(t, err, "wrong Kitties.Count")
	assert.Equal(t, uint64(3), reply.Count, "wrong count")
	client.Close()

	err = Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = Finalise()
	assert.Equal(t, fault.NotInitialised, err, "second Finalise")
}

func TestInitialiseBadCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "not a certificate",
		PrivateKey:         "not a key",
	}

	err := Initialise(&configuration, chain.Testing, "0.1", mocks.NewMockRegistry(ctl))
	assert.NotNil(t, err, "bad certificate accepted")
	assert.False(t, globalData.initialised, "initialised after error")
}
