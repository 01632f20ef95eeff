// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/kittiesd/entropy"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/util"
)

const certificateLifetime = 10 * 365 * 24 * time.Hour

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "kittiesd self signed cert for: " + name
	validUntil := time.Now().Add(certificateLifetime)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// create a new random hex entropy seed file
func makeSeedFile(seedFileName string) error {
	if util.EnsureFileExists(seedFileName) {
		return fault.KeyFileAlreadyExists
	}

	seed, err := entropy.NewSeed()
	if nil != err {
		return err
	}

	return ioutil.WriteFile(seedFileName, []byte(hex.EncodeToString(seed)+"\n"), 0600)
}

// read the PEM certificate and key files of a listener
func readKeyPair(certificateFileName string, privateKeyFileName string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(privateKeyFileName)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}

// seed from the configuration, or from the seed file if blank
func readSeed(options *EntropyType) (entropy.Source, error) {
	seed := options.Seed
	if "" == seed {
		b, err := ioutil.ReadFile(options.SeedFile)
		if nil != err {
			return nil, err
		}
		seed = strings.TrimSpace(string(b))
	}
	return entropy.NewFromHex(seed)
}
