// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittiesd/rpc/node"
)

// GetNodeInfo - the status of the connected kittiesd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := client.call("Node.Info", "Info", &node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
