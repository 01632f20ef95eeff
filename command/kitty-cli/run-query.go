// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittiesd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittiesd/kitty"
)

func runKitty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId("id", c.String("id"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Kitty(id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	var start *kitty.Id
	if s := c.String("start"); "" != s {
		id, err := checkKittyId("start", s)
		if nil != err {
			return err
		}
		start = &id
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	ownedConfig := &rpccalls.OwnedData{
		Owner:   owner,
		Start:   start,
		Count:   count,
		Reverse: c.Bool("reverse"),
	}

	response, err := client.Owned(ownedConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Count()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
