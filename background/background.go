// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of long running goroutines
package background

// Process - a background task, Run must return soon after shutdown closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	s []shutdown
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {
	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		register.s[i] = shutdown{
			shutdown: make(chan struct{}),
			finished: make(chan struct{}),
		}
		go run(p, args, register.s[i])
	}
	return register
}

func run(p Process, args interface{}, s shutdown) {
	defer close(s.finished)
	p.Run(args, s.shutdown)
}

// Stop - signal all processes then wait for every one to return
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}
	for _, s := range t.s {
		<-s.finished
	}
	t.s = nil
}
