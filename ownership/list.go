// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittiesd/account"
	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/kitty"
)

// List - fetch up to count committed ids of an owner by following links
//
// start None begins at the head, or at the tail when reverse is set;
// start Some(id) begins at id which must be owned.  The returned link
// is where the next page starts, None when the list is exhausted.
func (o *ownership) List(owner *account.Account, start Link, count int, reverse bool) ([]kitty.Id, Link, error) {
	if count <= 0 {
		return nil, None, fault.InvalidCount
	}

	current := start
	if current.IsNone() {
		sentinel, _ := o.Read(nil, owner, None)
		current = sentinel.Next
		if reverse {
			current = sentinel.Prev
		}
	} else if !o.Owns(nil, owner, mustId(current)) {
		return nil, None, fault.InvalidCursor
	}

	ids := make([]kitty.Id, 0, count)

loop:
	for len(ids) < count {
		id, ok := current.Id()
		if !ok {
			break loop
		}
		item, found := o.Read(nil, owner, current)
		if !found {
			return nil, None, fault.InvalidCursor
		}
		ids = append(ids, id)

		current = item.Next
		if reverse {
			current = item.Prev
		}
	}

	return ids, current, nil
}

func mustId(link Link) kitty.Id {
	id, _ := link.Id()
	return id
}
