// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package slisttest

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"rtkit.dev/util/slist"
)

type elem struct {
	slist.Link[*elem]
	id int
}

type fakeList struct {
	err error
	n   int
}

func (f fakeList) Verify() error { return f.err }
func (f fakeList) Len() int      { return f.n }
func (f fakeList) IsEmpty() bool { return false }

func TestIsConsistent(t *testing.T) {
	c := qt.New(t)
	var l slist.List[*elem]
	l.Append(&elem{id: 1})
	c.Assert(IsConsistent.Check(&l, nil, nil), qt.IsNil)

	errBroken := errors.New("broken")
	c.Assert(IsConsistent.Check(fakeList{err: errBroken}, nil, nil), qt.ErrorIs, errBroken)
	c.Assert(IsConsistent.Check(42, nil, nil), qt.IsNotNil)
}

func TestHasLen(t *testing.T) {
	c := qt.New(t)
	var notes []string
	note := func(key string, _ any) { notes = append(notes, key) }

	var l slist.List[*elem]
	c.Assert(HasLen.Check(&l, []any{0}, note), qt.IsNil)
	l.Append(&elem{id: 1})
	l.Append(&elem{id: 2})
	c.Assert(HasLen.Check(&l, []any{2}, note), qt.IsNil)
	c.Assert(notes, qt.HasLen, 0)

	c.Assert(HasLen.Check(&l, []any{3}, note), qt.Equals, qt.ErrSilent)
	c.Assert(notes, qt.DeepEquals, []string{"length"})

	// A list that claims to be non-empty with zero elements.
	notes = nil
	c.Assert(HasLen.Check(fakeList{n: 0}, []any{0}, note), qt.Equals, qt.ErrSilent)
	c.Assert(notes, qt.DeepEquals, []string{"length", "IsEmpty"})
}

func TestCollectAndDiff(t *testing.T) {
	c := qt.New(t)
	a, b := &elem{id: 1}, &elem{id: 2}
	var l slist.List[*elem]
	c.Assert(Diff(nil, &l), qt.Equals, "")
	l.Append(a)
	l.Append(b)
	c.Assert(Collect(&l), qt.HasLen, 2)
	c.Assert(CollectSafe(&l), qt.HasLen, 2)
	c.Assert(Diff([]*elem{a, b}, &l), qt.Equals, "")

	// Same contents, different identity.
	c.Assert(Diff([]*elem{{id: 1}, {id: 2}}, &l), qt.Not(qt.Equals), "")
	c.Assert(Diff([]*elem{b, a}, &l), qt.Not(qt.Equals), "")
}
