// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// decode a required base58 account on the selected network
func checkAccount(name string, s string, testnet bool) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	if a.IsTesting() != testnet {
		return nil, fmt.Errorf("%s: %q error: %s", name, s, fault.WrongNetworkForPublicKey)
	}
	return a, nil
}

// decode a required decimal kitty id
func checkKittyId(name string, s string) (kitty.Id, error) {
	if "" == s {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err || kitty.Id(n) == kitty.MaximumId {
		return 0, fmt.Errorf("%s: %q error: %s", name, s, fault.InvalidKittyId)
	}
	return kitty.Id(n), nil
}
