// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittiesd/account"
)

type generateReply struct {
	Account    *account.Account `json:"account"`
	PublicKey  string           `json:"public_key"`
	PrivateKey string           `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, privateKey, err := account.Generate(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", a)
	}

	printJson(m.w, generateReply{
		Account:    a,
		PublicKey:  hex.EncodeToString(a.PublicKey),
		PrivateKey: hex.EncodeToString(privateKey),
	})
	return nil
}
