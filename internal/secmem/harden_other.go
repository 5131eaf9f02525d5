// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

//go:build !linux

package secmem

// Harden is a no-op on platforms without mlockall/prctl support. The
// returned Hardening reports both protections as absent.
func Harden() Hardening {
	return Hardening{}
}

// MaskProcessName is unsupported off Linux and succeeds without effect.
func MaskProcessName(string) error {
	return nil
}
