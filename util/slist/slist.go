// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package slist provides an intrusive singly-linked list.
//
// Elements are not allocated by the list. Instead, callers embed a [Link] in
// their own struct and the list threads through those links:
//
//	type waiter struct {
//		slist.Link[*waiter]
//		id int
//	}
//
//	var q slist.List[*waiter]
//	q.Append(w)
//
// Entries can be added at either end, or after a known predecessor, and
// removed given their predecessor, in O(1) time and with no allocations.
//
// The list does not validate its preconditions. Linking an element that is
// already in a list, or removing an element with the wrong predecessor,
// silently corrupts the list. Building with the slistcheck tag turns the
// cheap checks into panics.
//
// A List is not safe for concurrent use. Callers sharing a list must hold
// their own lock across every sequence of operations that must appear
// atomic, such as PeekHead followed by Remove.
package slist

// Link is the link field embedded in list elements. E is the element
// reference type, typically a pointer to the embedding struct.
//
// The zero Link is unlinked.
type Link[E any] struct {
	next E
}

// SListLink returns l. It lets any type embedding a Link satisfy [Linker].
func (l *Link[E]) SListLink() *Link[E] { return l }

// Linker is the constraint for list elements: a comparable reference that
// can produce its embedded Link. The zero value of E means "none".
type Linker[E any] interface {
	comparable
	SListLink() *Link[E]
}

// List is an intrusive singly-linked list with head and tail references.
//
// The zero value for List is an empty list ready to use.
type List[E Linker[E]] struct {
	head E
	tail E
}

func isNone[E comparable](e E) bool {
	var none E
	return e == none
}

// Init resets l to the empty state. It does not touch the links of any
// elements l contained; use Clear for that.
func (l *List[E]) Init() {
	var none E
	l.head = none
	l.tail = none
}

// IsEmpty reports whether l has no elements.
func (l *List[E]) IsEmpty() bool {
	return isNone(l.head)
}

// PeekHead returns the first element of l, or the zero E if l is empty.
func (l *List[E]) PeekHead() E {
	return l.head
}

// PeekTail returns the last element of l, or the zero E if l is empty.
func (l *List[E]) PeekTail() E {
	return l.tail
}

// PeekNext returns the element following n in its list, or the zero E if n
// is the last element.
//
// The result is only meaningful while n is linked into a list.
func PeekNext[E Linker[E]](n E) E {
	return n.SListLink().next
}

// Prepend inserts n at the front of l.
//
// n must not already be in a list.
func (l *List[E]) Prepend(n E) {
	l.checkUnlinked(n)
	n.SListLink().next = l.head
	l.head = n
	if isNone(l.tail) {
		l.tail = n
	}
}

// Append inserts n at the back of l.
//
// n must not already be in a list.
func (l *List[E]) Append(n E) {
	l.checkUnlinked(n)
	var none E
	n.SListLink().next = none
	if isNone(l.tail) {
		l.head = n
	} else {
		l.tail.SListLink().next = n
	}
	l.tail = n
}

// InsertAfter inserts n immediately after pred. If pred is the zero E, n is
// inserted at the front of l.
//
// pred must be an element of l, and n must not already be in a list.
func (l *List[E]) InsertAfter(pred, n E) {
	if isNone(pred) {
		l.Prepend(n)
		return
	}
	l.checkUnlinked(n)
	pl := pred.SListLink()
	n.SListLink().next = pl.next
	pl.next = n
	if pred == l.tail {
		l.tail = n
	}
}

// Remove unlinks n from l given its predecessor pred, which is the zero E
// when n is the head of l.
//
// pred must immediately precede n in l; an incorrect pred corrupts l.
// Use FindAndRemove when the predecessor is not known.
func (l *List[E]) Remove(pred, n E) {
	l.checkPredecessor(pred, n)
	nl := n.SListLink()
	if isNone(pred) {
		l.head = nl.next
	} else {
		pred.SListLink().next = nl.next
	}
	if n == l.tail {
		l.tail = pred
	}
	var none E
	nl.next = none
}

// FindAndRemove scans l for n and unlinks it. It reports whether n was
// found; if not, l is unchanged.
//
// It takes O(n) time.
func (l *List[E]) FindAndRemove(n E) bool {
	var prev E
	for cur := l.head; !isNone(cur); cur = cur.SListLink().next {
		if cur == n {
			l.Remove(prev, n)
			return true
		}
		prev = cur
	}
	return false
}

// Get removes and returns the first element of l, or returns the zero E if
// l is empty.
func (l *List[E]) Get() E {
	n := l.head
	if !isNone(n) {
		var none E
		l.Remove(none, n)
	}
	return n
}

// Len returns the number of elements in l.
//
// NOTE: This is an O(n) operation.
func (l *List[E]) Len() (count int) {
	for range l.All() {
		count++
	}
	return count
}

// AppendList moves every element of other to the back of l in O(1) time,
// leaving other empty.
//
// other must not be l.
func (l *List[E]) AppendList(other *List[E]) {
	if other.IsEmpty() {
		return
	}
	if isNone(l.tail) {
		l.head = other.head
	} else {
		l.tail.SListLink().next = other.head
	}
	l.tail = other.tail
	other.Init()
}

// Clear unlinks every element of l, resetting each element's Link, and
// leaves l empty.
func (l *List[E]) Clear() {
	var none E
	for n := l.head; !isNone(n); {
		nl := n.SListLink()
		n = nl.next
		nl.next = none
	}
	l.Init()
}
