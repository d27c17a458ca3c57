// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package slist

import (
	"errors"
	"fmt"
)

// Errors returned by Verify.
var (
	ErrHeadTailMismatch = errors.New("slist: head and tail disagree on emptiness")
	ErrTailNotLast      = errors.New("slist: tail has a successor")
	ErrTailUnreachable  = errors.New("slist: tail is not reachable from head")
	ErrCycle            = errors.New("slist: cycle")
)

// Verify walks l and reports the first broken invariant it finds, or nil
// if l is well formed. It is meant for tests and debugging; no List method
// calls it.
//
// It takes O(n) time and terminates even if l contains a cycle.
func (l *List[E]) Verify() error {
	if isNone(l.head) != isNone(l.tail) {
		return fmt.Errorf("%w: head=%v tail=%v", ErrHeadTailMismatch, l.head, l.tail)
	}
	if isNone(l.head) {
		return nil
	}
	if next := l.tail.SListLink().next; !isNone(next) {
		return fmt.Errorf("%w: tail %v links to %v", ErrTailNotLast, l.tail, next)
	}

	// Floyd's cycle detection: fast moves two links for every one of slow.
	slow, fast := l.head, l.head
	for steps := 1; ; steps++ {
		for range 2 {
			next := fast.SListLink().next
			if isNone(next) {
				if fast != l.tail {
					return fmt.Errorf("%w: walk from head ends at %v, tail is %v", ErrTailUnreachable, fast, l.tail)
				}
				return nil
			}
			fast = next
		}
		slow = slow.SListLink().next
		if slow == fast {
			return fmt.Errorf("%w: detected after %d steps from head", ErrCycle, steps)
		}
	}
}
