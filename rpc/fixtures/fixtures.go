// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for the rpc tests
package fixtures

import (
	"bytes"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittiesd/account"
)

const (
	testingDirName = "testing"

	// LogCategory - logger tag for the tests
	LogCategory = "testing"
)

// SetupTestLogger - log to a temporary directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// panic to avoid running tests without logging
	if err := logger.Initialise(logging); err != nil {
		panic("logger initialization failed: " + err.Error())
	}
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// Owner - a testing network account
func Owner(b byte) *account.Account {
	owner, err := account.New(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic("owner fixture: " + err.Error())
	}
	return owner
}

// LiveOwner - a live network account
func LiveOwner(b byte) *account.Account {
	owner, err := account.New(bytes.Repeat([]byte{b}, 32), false)
	if nil != err {
		panic("owner fixture: " + err.Error())
	}
	return owner
}

// CertificatePair - a fresh self signed PEM certificate and key
func CertificatePair() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("kittiesd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic("certificate fixture: " + err.Error())
	}
	return string(cert), string(key)
}
