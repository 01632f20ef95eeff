// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/kittiesd/fault"
)

// test that each error is in exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.AlreadyInitialised, true, false, false, false, false, false},
		{fault.SameParent, false, true, false, false, false, false},
		{fault.NotOwner, false, true, false, false, false, false},
		{fault.InvalidKeyLength, false, false, true, false, false, false},
		{fault.UnknownKitty, false, false, false, true, false, false},
		{fault.CountOverflow, false, false, false, false, true, false},
		{fault.InvalidOwnershipItem, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// errors are single instances so plain comparison works
func TestIdentity(t *testing.T) {
	var err error = fault.NotOwner
	if err != fault.NotOwner {
		t.Errorf("expected identity comparison to succeed for: %v", err)
	}
	if err == fault.SameParent {
		t.Errorf("distinct errors compared equal: %v", err)
	}
}
