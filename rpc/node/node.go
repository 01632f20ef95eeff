// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/counter"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counter - source of the kitty count
type Counter interface {
	Count() uint64
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Chain    string
	Start    time.Time
	Version  string
	Registry Counter
	counter  *counter.Counter
}

// New - the Node RPC handler
func New(log *logger.L, chain string, start time.Time, version string, counter *counter.Counter, registry Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Chain:    chain,
		Start:    start,
		Version:  version,
		Registry: registry,
		counter:  counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	RPCs    uint64 `json:"rpcs"`
	Kitties uint64 `json:"kitties,string"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Registry {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = node.Chain
	reply.RPCs = node.counter.Uint64()
	reply.Kitties = node.Registry.Count()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
