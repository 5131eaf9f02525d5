// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

import "errors"

// Sentinel errors returned by the clipboard channel and cipher. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrClipboardAccess is returned when the OS clipboard resource cannot
	// be read or written.
	ErrClipboardAccess = errors.New("clipboard access failed")

	// ErrEncryption is returned when key or nonce generation, or the AEAD
	// construction itself, fails. It is fatal to the one copy operation
	// that produced it, never to the process.
	ErrEncryption = errors.New("encryption failed")

	// ErrNotEncrypted is returned by Decrypt when the clipboard does not
	// hold an encrypted envelope (missing tag prefix). The cipher is never
	// invoked in this case.
	ErrNotEncrypted = errors.New("clipboard does not contain encrypted data")

	// ErrFormat is returned for malformed envelopes: wrong field count,
	// invalid base64, key or nonce of the wrong decoded length, or
	// plaintext that is not valid UTF-8.
	ErrFormat = errors.New("invalid encrypted format")

	// ErrAuthenticationFailed is returned when the Poly1305 tag check
	// fails: wrong key, corrupted or truncated ciphertext. User-facing
	// output must present it identically to [ErrFormat] so an attacker
	// cannot tell which check rejected the input.
	ErrAuthenticationFailed = errors.New("decryption failed")
)
