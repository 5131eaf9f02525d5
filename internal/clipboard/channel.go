// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package clipboard implements the ephemeral encrypted clipboard channel:
// authenticated encryption of copied payloads under single-use keys, the
// GHOST_ENCRYPTED wire envelope, and timed self-expiry of whatever was
// written.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/secmem"
)

// Channel owns the OS clipboard resource. All access is serialised behind
// one mutex shared by the foreground copy/decrypt/clear path and every
// scheduled background clear, so no two clipboard operations ever run
// concurrently.
type Channel struct {
	mu     sync.Mutex
	system System
	log    *logger.Logger

	// latest identifies the most recent clipboard write. A scheduled clear
	// captures the token of the write it belongs to and fires only while
	// that token is still current, so a stale timer can never wipe a newer
	// secret.
	latest uuid.UUID
}

// NewChannel constructs a [Channel] backed by the OS clipboard.
func NewChannel(log *logger.Logger) *Channel {
	return NewChannelWithSystem(systemClipboard{}, log)
}

// NewChannelWithSystem constructs a [Channel] over an arbitrary [System].
// Used by tests to substitute an in-memory clipboard.
func NewChannelWithSystem(system System, log *logger.Logger) *Channel {
	return &Channel{system: system, log: log}
}

// Copy writes plaintext to the clipboard, encrypting it first when encrypt
// is true. A positive timeout schedules a background clear after that
// delay; zero means the value persists until cleared manually. The returned
// message is the user-facing confirmation and, for encrypted copies, the
// only place the single-use key is ever shown.
//
// The caller-supplied plaintext buffer is erased before Copy returns,
// regardless of outcome.
func (c *Channel) Copy(plaintext []byte, encrypt bool, timeout time.Duration) (string, error) {
	defer secmem.Zero(plaintext)

	if !encrypt {
		if err := c.write(string(plaintext), timeout); err != nil {
			return "", err
		}
		if timeout > 0 {
			return fmt.Sprintf(MsgCopiedPlain, int(timeout.Seconds())), nil
		}
		return MsgCopiedPlainNoExpiry, nil
	}

	key, nonce, ciphertext, err := seal(plaintext)
	if err != nil {
		return "", err
	}

	keyB64 := base64.StdEncoding.EncodeToString(key)
	envelope := buildEnvelope(nonce, ciphertext)
	secmem.Zero(key)
	secmem.Zero(nonce)

	if err := c.write(envelope, timeout); err != nil {
		return "", err
	}

	if timeout > 0 {
		return fmt.Sprintf(MsgCopiedEncrypted, keyB64, int(timeout.Seconds())), nil
	}
	return fmt.Sprintf(MsgCopiedEncryptedNoExpiry, keyB64), nil
}

// Decrypt reads the clipboard, parses the envelope and decrypts it with the
// base64-encoded 256-bit key shown at copy time. Decoded key bytes are
// erased before any return, success or error.
func (c *Channel) Decrypt(keyB64 string) (string, error) {
	c.mu.Lock()
	text, err := c.system.Get()
	c.mu.Unlock()
	if err != nil {
		return "", err
	}

	nonce, ciphertext, err := parseEnvelope(text)
	if err != nil {
		return "", err
	}

	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		secmem.Zero(key)
		return "", fmt.Errorf("%w: invalid key encoding", ErrFormat)
	}

	plaintext, err := open(key, nonce, ciphertext)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plaintext) {
		secmem.Zero(plaintext)
		return "", fmt.Errorf("%w: decrypted data is not valid UTF-8", ErrFormat)
	}

	result := string(plaintext)
	secmem.Zero(plaintext)
	return result, nil
}

// Clear immediately overwrites the clipboard with empty content.
func (c *Channel) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = uuid.New()
	return c.system.Set("")
}

// write stores text as the latest clipboard value and, when timeout is
// positive, schedules the one-shot expiry bound to this write.
func (c *Channel) write(text string, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.system.Set(text); err != nil {
		return err
	}

	token := uuid.New()
	c.latest = token

	if timeout > 0 {
		time.AfterFunc(timeout, func() { c.expire(token) })
		c.log.Debug().
			Str("token", token.String()).
			Dur("timeout", timeout).
			Msg("scheduled clipboard clear")
	}

	return nil
}

// expire is the deferred clear action. It is a silent no-op when a newer
// write has replaced the one it was scheduled for.
func (c *Channel) expire(token uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest != token {
		c.log.Debug().Str("token", token.String()).Msg("stale clipboard clear skipped")
		return
	}

	if err := c.system.Set(""); err != nil {
		c.log.Error().Err(err).Msg("scheduled clipboard clear failed")
		return
	}
	c.latest = uuid.New()
	c.log.Debug().Str("token", token.String()).Msg("clipboard cleared on expiry")
}
