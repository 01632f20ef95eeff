// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittiesd/fault"
	"github.com/bitmark-inc/kittiesd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "unlimited")

	// a zero burst can never reserve
	blocked := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(blocked), "zero burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 20), "valid count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 20), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 21, 20), "count above maximum")

	small := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(small, 10, 20), "count above burst")
}
