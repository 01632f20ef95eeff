// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// All changes are made through a Transaction: writes are collected
// in a LevelDB batch and mirrored into a cache so that later reads in
// the same transaction observe them; Commit writes the batch
// atomically and Abort discards it.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ⧺       = concatenation of byte data
// 3. id      = kitty id as big endian uint32 (4 bytes)
// 4. owner   = account bytes (key variant ⧺ 32 byte ED25519 public key)
// 5. link    = 00 (no kitty, the sentinel) or 01 ⧺ id
// 6. count   = big endian uint64 (8 bytes)
//
// Kitties:
//
//   K ⧺ id              - kitty record
//                         data: 16 byte DNA
//   C                   - number of kitties created, i.e. the next id
//                         data: count
//
// Ownership:
//
//   O ⧺ owner ⧺ link    - node of the owner's doubly linked list
//                         data: prev link ⧺ next link (each padded to 5 bytes)
//                         the 00 link node holds prev = tail, next = head
//
// Testing:
//
//   Z ⧺ key             - testing data
package storage
