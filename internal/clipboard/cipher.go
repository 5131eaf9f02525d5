// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/ddanilov/ghost-shell/internal/secmem"
)

// Key, nonce and tag sizes of the ChaCha20-Poly1305 construction. The
// envelope format depends on these exact values, so they are fixed here
// rather than read from the cipher at runtime.
const (
	KeySize   = chacha20poly1305.KeySize   // 32 bytes
	NonceSize = chacha20poly1305.NonceSize // 12 bytes
	tagSize   = chacha20poly1305.Overhead  // 16 bytes
)

// seal encrypts plaintext under a freshly generated 256-bit key and 96-bit
// nonce using ChaCha20-Poly1305. Both key and nonce are read from the OS
// CSPRNG; neither is ever reused. The caller owns the returned buffers and
// is responsible for erasing key and nonce once they have been displayed.
//
// seal fails only when random generation or cipher construction fails,
// never on the content of plaintext.
func seal(plaintext []byte) (key, nonce, ciphertext []byte, err error) {
	key = make([]byte, KeySize)
	if _, err = io.ReadFull(rand.Reader, key); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: generate key: %v", ErrEncryption, err)
	}

	nonce = make([]byte, NonceSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		secmem.Zero(key)
		return nil, nil, nil, fmt.Errorf("%w: generate nonce: %v", ErrEncryption, err)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		secmem.Zero(key)
		secmem.Zero(nonce)
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	ciphertext = aead.Seal(nil, nonce, plaintext, nil)
	return key, nonce, ciphertext, nil
}

// open decrypts ciphertext with key and nonce. Length checks run before the
// cipher is ever constructed: a key or nonce of the wrong size yields
// [ErrFormat]. A failed Poly1305 tag check (wrong key, flipped or truncated
// ciphertext) yields [ErrAuthenticationFailed]. The key buffer is erased on
// every path, success and failure alike.
func open(key, nonce, ciphertext []byte) ([]byte, error) {
	defer secmem.Zero(key)

	if len(key) != KeySize || len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: invalid key or nonce length", ErrFormat)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
