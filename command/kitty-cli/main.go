// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittiesd/chain"
)

type metadata struct {
	connect string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "client for the kittiesd registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Kitties,
			Usage: " connect to kitties `NETWORK` [kitties|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " kittiesd host/IP and port, `HOST:PORT`",
			EnvVar: "KITTIES_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new owner account and private key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create a new kitty with random DNA",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "breed a new kitty from two parents",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner of the new kitty `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "parent1, a",
					Value: "",
					Usage: "*first parent kitty `ID`",
				},
				cli.StringFlag{
					Name:  "parent2, b",
					Value: "",
					Usage: "*second parent kitty `ID`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*current owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "kitty",
			Usage:     "display a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "owned",
			Usage:     "list kitties of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue from kitty `ID`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum kitties to list `COUNT`",
				},
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " newest first",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "count",
			Usage:     "number of kitties created",
			ArgsUsage: " ",
			Action:    runCount,
		},
		{
			Name:      "info",
			Usage:     "display kittiesd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case chain.Kitties, "live":
			network = chain.Kitties
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local, "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be kitties/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			testnet: chain.IsTesting(network),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
