// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittiesd/fault"
)

// enumeration of supported key algorithms
const (
	nothing = iota // zero keytype is never valid for an owner
	ED25519 = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02
	extendedCode  = 0x80

	algorithmShift = 4 // shift 4 bits to get algorithm

	// key variant byte followed by the public key
	byteLength = 1 + ed25519.PublicKeySize
)

// Account - the owner of kitties, an ED25519 public key tagged
// with the network it belongs to
type Account struct {
	Test      bool
	PublicKey []byte
}

// New - create an account from a public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	key := make([]byte, ed25519.PublicKeySize)
	copy(key, publicKey)
	return &Account{
		Test:      test,
		PublicKey: key,
	}, nil
}

// Generate - make a new random account and return it with its private key
func Generate(test bool) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	account, err := New(publicKey, test)
	if nil != err {
		return nil, nil, err
	}
	return account, privateKey, nil
}

// FromBase58 - this converts a Base58 encoded string and returns an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.InvalidAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength

	account, err := FromBytes(accountDecoded[:checksumStart])
	if nil != err {
		return nil, err
	}

	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return account, nil
}

// FromBytes - this converts a byte encoded buffer and returns an account
func FromBytes(accountBytes []byte) (*Account, error) {
	if 0 == len(accountBytes) {
		return nil, fault.InvalidAccount
	}

	// single byte variant only
	keyVariant := accountBytes[0]
	if 0 != keyVariant&extendedCode {
		return nil, fault.InvalidKeyType
	}

	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if ED25519 != keyAlgorithm {
		return nil, fault.InvalidKeyType
	}

	if byteLength != len(accountBytes) {
		return nil, fault.InvalidKeyLength
	}

	return New(accountBytes[1:], 0 != keyVariant&testKeyCode)
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// Bytes - byte slice for encoded key, the storage form of an owner
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// Equal - same network and same key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
