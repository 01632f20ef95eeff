// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	CountOverflow                = ProcessError("kitties count overflow")
	DatabaseIsNotSet             = NotFoundError("database is not set")
	InvalidAccount               = InvalidError("invalid account")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDatabaseVersion       = InvalidError("invalid database version")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidKittyId               = InvalidError("invalid kitty id")
	InvalidKittyRecord           = RecordError("invalid kitty record")
	InvalidOwnershipItem         = RecordError("invalid ownership item")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidSeedLength            = LengthError("invalid entropy seed length")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = InvalidError("not owner")
	NotPublicKey                 = InvalidError("not public key")
	RateLimiting                 = InvalidError("rate limiting")
	SameParent                   = InvalidError("require different parents")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotInUse          = ProcessError("transaction not in use")
	UnknownKitty                 = NotFoundError("unknown kitty")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
