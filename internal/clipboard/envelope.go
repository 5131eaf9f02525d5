// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EnvelopeTag is the fixed prefix that marks clipboard text as an encrypted
// envelope. The full wire format is
//
//	GHOST_ENCRYPTED:<nonce_base64>:<ciphertext_base64>
//
// where nonce_base64 decodes to exactly 12 bytes and ciphertext_base64 to
// the payload length plus the 16-byte Poly1305 tag. Unencrypted copies
// store the literal text with no prefix.
const EnvelopeTag = "GHOST_ENCRYPTED"

const envelopeFields = 2

// buildEnvelope serialises nonce and ciphertext into the textual wire form.
func buildEnvelope(nonce, ciphertext []byte) string {
	nonceB64 := base64.StdEncoding.EncodeToString(nonce)
	ciphertextB64 := base64.StdEncoding.EncodeToString(ciphertext)
	return EnvelopeTag + ":" + nonceB64 + ":" + ciphertextB64
}

// parseEnvelope splits and decodes clipboard text produced by
// [buildEnvelope]. Text without the tag prefix yields [ErrNotEncrypted];
// any other malformation (field count, base64, decoded nonce length) yields
// [ErrFormat].
func parseEnvelope(text string) (nonce, ciphertext []byte, err error) {
	body, found := strings.CutPrefix(text, EnvelopeTag+":")
	if !found {
		return nil, nil, ErrNotEncrypted
	}

	parts := strings.Split(body, ":")
	if len(parts) != envelopeFields {
		return nil, nil, fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, envelopeFields, len(parts))
	}

	nonce, err = base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid nonce encoding", ErrFormat)
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: invalid nonce length", ErrFormat)
	}

	ciphertext, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid ciphertext encoding", ErrFormat)
	}

	return nonce, ciphertext, nil
}
