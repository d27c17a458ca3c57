// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package slist

import "iter"

// All returns an iterator over the elements of l from head to tail.
//
// The successor of each element is read after the loop body runs, so the
// body must not remove or relink the element it was given. Use AllSafe or a
// Cursor for that.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; !isNone(n); n = n.SListLink().next {
			if !yield(n) {
				return
			}
		}
	}
}

// AllSafe returns an iterator over the elements of l from head to tail that
// tolerates removal of the current element by the loop body.
//
// Only the current element may be removed. Removing an element that has not
// been visited yet, other than through the loop body's own removal of the
// current one, leaves the iterator holding a stale successor.
func (l *List[E]) AllSafe() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; !isNone(n); {
			next := n.SListLink().next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Cursor walks a List and can remove the element it is positioned on in
// O(1) time. The zero Cursor is not usable; get one from List.Cursor.
//
// Typical use:
//
//	c := l.Cursor()
//	for c.Next() {
//		if done(c.Node()) {
//			c.Remove()
//		}
//	}
//
// Like AllSafe, a Cursor tolerates removal of its current element, whether
// by Cursor.Remove or by any other List method, but not removal of elements
// it has not reached yet.
type Cursor[E Linker[E]] struct {
	l       *List[E]
	prev    E // last visited element still in l; zero at the head position
	cur     E
	next    E
	started bool
}

// Cursor returns a Cursor positioned before the first element of l.
func (l *List[E]) Cursor() Cursor[E] {
	return Cursor[E]{l: l}
}

// Next advances c to the next element and reports whether there is one.
func (c *Cursor[E]) Next() bool {
	switch {
	case !c.started:
		c.started = true
		c.cur = c.l.head
	case isNone(c.cur):
		return false
	default:
		if c.stillLinked() {
			c.prev = c.cur
		}
		c.cur = c.next
	}
	if isNone(c.cur) {
		return false
	}
	c.next = c.cur.SListLink().next
	return true
}

// stillLinked reports whether c.cur is still the successor of c.prev.
func (c *Cursor[E]) stillLinked() bool {
	if isNone(c.prev) {
		return c.l.head == c.cur
	}
	return c.prev.SListLink().next == c.cur
}

// Node returns the element c is positioned on.
func (c *Cursor[E]) Node() E {
	return c.cur
}

// Prev returns the predecessor of the current element in the list, or the
// zero E if the current element is the head.
func (c *Cursor[E]) Prev() E {
	return c.prev
}

// Remove unlinks the current element from the list. It must be called at
// most once per call to Next.
func (c *Cursor[E]) Remove() {
	c.l.Remove(c.prev, c.cur)
}
