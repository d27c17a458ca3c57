// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package slisttest contains test helpers for code built on package slist.
package slisttest

import (
	"slices"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"rtkit.dev/types/logger"
	"rtkit.dev/util/slist"
)

// Collect returns the elements of l in order.
func Collect[E slist.Linker[E]](l *slist.List[E]) []E {
	return slices.Collect(l.All())
}

// CollectSafe is like Collect but walks l with AllSafe.
func CollectSafe[E slist.Linker[E]](l *slist.List[E]) []E {
	return slices.Collect(l.AllSafe())
}

// Diff returns a human-readable report of the differences between want and
// the elements of l, or the empty string if they are the same elements in
// the same order. Elements are compared by identity, not by content, and a
// nil want matches an empty list.
func Diff[E slist.Linker[E]](want []E, l *slist.List[E]) string {
	return cmp.Diff(want, Collect(l),
		cmp.Comparer(func(a, b E) bool { return a == b }),
		cmpopts.EquateEmpty())
}

// Dump logs the elements of l, one per line, followed by a summary line.
func Dump[E slist.Linker[E]](logf logger.Logf, l *slist.List[E]) {
	n := 0
	for e := range l.All() {
		logf("slist[%d] = %v", n, e)
		n++
	}
	logf("slist: %d elements, head=%v tail=%v", n, l.PeekHead(), l.PeekTail())
}

type verifier interface {
	Verify() error
}

// IsConsistent is a quicktest checker that passes when got, a *slist.List,
// satisfies the list invariants as reported by its Verify method.
//
//	c.Assert(&l, slisttest.IsConsistent)
var IsConsistent qt.Checker = consistentChecker{}

type consistentChecker struct{}

func (consistentChecker) ArgNames() []string {
	return []string{"got"}
}

func (consistentChecker) Check(got any, args []any, note func(key string, value any)) error {
	v, ok := got.(verifier)
	if !ok {
		return qt.BadCheckf("%T is not a *slist.List", got)
	}
	return v.Verify()
}

// HasLen is a quicktest checker that passes when got, a *slist.List, has
// the given number of elements and IsEmpty agrees with that count.
//
//	c.Assert(&l, slisttest.HasLen, 3)
var HasLen qt.Checker = lenChecker{}

type lenChecker struct{}

type lenner interface {
	Len() int
	IsEmpty() bool
}

func (lenChecker) ArgNames() []string {
	return []string{"got", "want length"}
}

func (lenChecker) Check(got any, args []any, note func(key string, value any)) error {
	l, ok := got.(lenner)
	if !ok {
		return qt.BadCheckf("%T is not a *slist.List", got)
	}
	want, ok := args[0].(int)
	if !ok {
		return qt.BadCheckf("want length is %T, not int", args[0])
	}
	n := l.Len()
	if n != want {
		note("length", n)
		return qt.ErrSilent
	}
	if l.IsEmpty() != (n == 0) {
		note("length", n)
		note("IsEmpty", l.IsEmpty())
		return qt.ErrSilent
	}
	return nil
}
