// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/chain"
	"github.com/bitmark-inc/kittiesd/counter"
	"github.com/bitmark-inc/kittiesd/rpc/kitties"
	"github.com/bitmark-inc/kittiesd/rpc/node"
)

// Create - an RPC server with all the kittiesd handlers registered
func Create(log *logger.L, chainName string, version string, rpcCount *counter.Counter, registry kitties.Registry) *rpc.Server {

	start := time.Now().UTC()
	isTesting := func() bool {
		return chain.IsTesting(chainName)
	}

	server := rpc.NewServer()

	_ = server.Register(kitties.New(log, isTesting, registry))
	_ = server.Register(node.New(log, chainName, start, version, rpcCount, registry))

	return server
}
