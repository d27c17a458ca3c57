// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !slistcheck

package slist

// consistencyCheck enables runtime checks of the caller preconditions of
// Prepend, Append, InsertAfter and Remove. It is off by default so that
// every operation keeps its documented cost; build with the slistcheck tag
// to turn it on.
const consistencyCheck = false
