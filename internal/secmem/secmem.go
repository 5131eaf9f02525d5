// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package secmem provides guaranteed erasure of sensitive byte and rune
// buffers, plus best-effort process hardening (memory locking, core dump
// suppression, process-name masking) on platforms that support it.
//
// Every component of the shell that handles secrets funnels its cleanup
// through [Zero] and [ZeroRunes] so the erasure behaviour can be audited in
// one place.
package secmem

import "runtime"

// Zero overwrites every byte of b with zero. The go:noinline directive and
// the runtime.KeepAlive call prevent the compiler from eliding the writes
// when b is about to become unreachable.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroRunes overwrites every rune of r with zero. Rune buffers are used for
// live input text, where cursor arithmetic needs random access to code
// points rather than bytes.
//
//go:noinline
func ZeroRunes(r []rune) {
	for i := range r {
		r[i] = 0
	}
	runtime.KeepAlive(r)
}

// Hardening reports which process-level protections were successfully
// applied by [Harden]. A false field means the protection is unsupported on
// this platform or was denied by the kernel; it is never an error.
type Hardening struct {
	MemoryLocked      bool
	CoreDumpsDisabled bool
}
