// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittiesd/command/kitty-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}
	parent1, err := checkKittyId("parent1", c.String("parent1"))
	if nil != err {
		return err
	}
	parent2, err := checkKittyId("parent2", c.String("parent2"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "parents: %d %d\n", parent1, parent2)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(owner, parent1, parent2)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkAccount("from", c.String("from"), m.testnet)
	if nil != err {
		return err
	}
	to, err := checkAccount("receiver", c.String("receiver"), m.testnet)
	if nil != err {
		return err
	}
	id, err := checkKittyId("id", c.String("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(from, to, id)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
