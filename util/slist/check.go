// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package slist

import "fmt"

// checkUnlinked panics if consistency checks are enabled and n is visibly
// still linked: it has a successor, or it is the tail of l.
//
// A node that is the tail of some other list cannot be detected.
func (l *List[E]) checkUnlinked(n E) {
	if !consistencyCheck {
		return
	}
	if isNone(n) {
		panic("slist: nil node")
	}
	if !isNone(n.SListLink().next) || n == l.tail {
		panic(fmt.Sprintf("slist: node %v is already linked", n))
	}
}

// checkPredecessor panics if consistency checks are enabled and pred does
// not immediately precede n in l.
func (l *List[E]) checkPredecessor(pred, n E) {
	if !consistencyCheck {
		return
	}
	if isNone(n) {
		panic("slist: nil node")
	}
	if isNone(pred) {
		if l.head != n {
			panic(fmt.Sprintf("slist: node %v is not the head", n))
		}
		return
	}
	if got := pred.SListLink().next; got != n {
		panic(fmt.Sprintf("slist: %v does not precede %v (its successor is %v)", pred, n, got))
	}
}
