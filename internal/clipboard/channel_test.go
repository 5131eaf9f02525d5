package clipboard

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/ghost-shell/internal/logger"
)

// fakeSystem is an in-memory [System] used to exercise the channel without
// a display server.
type fakeSystem struct {
	mu     sync.Mutex
	text   string
	getErr error
	setErr error
}

func (f *fakeSystem) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.text, nil
}

func (f *fakeSystem) Set(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.text = text
	return nil
}

func (f *fakeSystem) current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func newTestChannel() (*Channel, *fakeSystem) {
	sys := &fakeSystem{}
	return NewChannelWithSystem(sys, logger.Nop()), sys
}

// extractKey pulls the base64 key out of an encrypted-copy confirmation.
func extractKey(t *testing.T, msg string) string {
	t.Helper()
	_, after, found := strings.Cut(msg, "KEY: ")
	require.True(t, found, "message %q has no key", msg)
	key, _, _ := strings.Cut(after, "\n")
	return key
}

func TestCopy_PlainWritesVerbatim(t *testing.T) {
	ch, sys := newTestChannel()

	msg, err := ch.Copy([]byte("hello"), false, 0)
	require.NoError(t, err)

	assert.Equal(t, MsgCopiedPlainNoExpiry, msg)
	assert.Equal(t, "hello", sys.current())
}

func TestCopy_ErasesCallerPlaintext(t *testing.T) {
	ch, _ := newTestChannel()

	plaintext := []byte("burn after writing")
	_, err := ch.Copy(plaintext, true, 0)
	require.NoError(t, err)

	assert.Equal(t, make([]byte, len("burn after writing")), plaintext)
}

func TestCopy_ErasesCallerPlaintextOnError(t *testing.T) {
	sys := &fakeSystem{setErr: ErrClipboardAccess}
	ch := NewChannelWithSystem(sys, logger.Nop())

	plaintext := []byte("still erased")
	_, err := ch.Copy(plaintext, false, 0)
	require.Error(t, err)

	assert.Equal(t, make([]byte, len("still erased")), plaintext)
}

func TestCopyDecrypt_EncryptedScenario(t *testing.T) {
	ch, sys := newTestChannel()

	msg, err := ch.Copy([]byte("secret"), true, 30*time.Second)
	require.NoError(t, err)

	// Confirmation embeds the single-use key and the expiry delay.
	key := extractKey(t, msg)
	assert.Len(t, key, 44, "256-bit key must encode to 44 base64 chars")
	assert.Contains(t, msg, "AUTO-CLEAR IN 30s.")

	// Clipboard holds the self-describing envelope, never the plaintext.
	fields := strings.Split(sys.current(), ":")
	require.Len(t, fields, 3)
	assert.Equal(t, "GHOST_ENCRYPTED", fields[0])
	assert.Len(t, fields[1], 16, "96-bit nonce must encode to 16 base64 chars")
	assert.NotContains(t, sys.current(), "secret")

	plaintext, err := ch.Decrypt(key)
	require.NoError(t, err)
	assert.Equal(t, "secret", plaintext)
}

func TestDecrypt_MutatedKeyFailsAuthentication(t *testing.T) {
	ch, _ := newTestChannel()

	msg, err := ch.Copy([]byte("secret"), true, 0)
	require.NoError(t, err)
	key := extractKey(t, msg)

	// Swap the first character for a different base64 symbol; length and
	// encoding stay valid, so only the tag check can reject it.
	mutated := "A" + key[1:]
	if mutated == key {
		mutated = "B" + key[1:]
	}

	_, err = ch.Decrypt(mutated)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestDecrypt_PlainClipboardIsNotEncrypted(t *testing.T) {
	ch, sys := newTestChannel()
	sys.text = "just some text"

	_, err := ch.Decrypt(strings.Repeat("A", 43) + "=")
	assert.ErrorIs(t, err, ErrNotEncrypted)
}

func TestDecrypt_WrongKeyLengthIsFormatError(t *testing.T) {
	ch, _ := newTestChannel()

	_, err := ch.Copy([]byte("secret"), true, 0)
	require.NoError(t, err)

	// 16 decoded bytes instead of 32.
	shortKey := strings.Repeat("A", 22) + "=="
	_, err = ch.Decrypt(shortKey)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestDecrypt_BadKeyEncodingIsFormatError(t *testing.T) {
	ch, _ := newTestChannel()

	_, err := ch.Copy([]byte("secret"), true, 0)
	require.NoError(t, err)

	_, err = ch.Decrypt("!!!definitely not base64!!!")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestCopy_ScheduledClearFires(t *testing.T) {
	ch, sys := newTestChannel()

	_, err := ch.Copy([]byte("ephemeral"), true, 20*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, sys.current())

	assert.Eventually(t, func() bool { return sys.current() == "" },
		time.Second, 5*time.Millisecond, "clipboard should self-clear after the timeout")
}

func TestCopy_StaleClearSkipsNewerWrite(t *testing.T) {
	ch, sys := newTestChannel()

	_, err := ch.Copy([]byte("first"), false, 20*time.Millisecond)
	require.NoError(t, err)

	// Second write replaces the first before its timer fires.
	_, err = ch.Copy([]byte("second"), false, 0)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "second", sys.current(), "stale timer must not clear a newer write")
}

func TestClear_EmptiesClipboard(t *testing.T) {
	ch, sys := newTestChannel()
	sys.text = "leftover"

	require.NoError(t, ch.Clear())
	assert.Empty(t, sys.current())
}

func TestDecrypt_ClipboardReadErrorPropagates(t *testing.T) {
	sys := &fakeSystem{getErr: ErrClipboardAccess}
	ch := NewChannelWithSystem(sys, logger.Nop())

	_, err := ch.Decrypt(strings.Repeat("A", 43) + "=")
	assert.ErrorIs(t, err, ErrClipboardAccess)
}

func TestCopy_EmptyAndUnicodePayloads(t *testing.T) {
	ch, _ := newTestChannel()

	for _, payload := range []string{"π ≈ 3.14159", "tab\tand\nnewline", strings.Repeat("long ", 1024)} {
		msg, err := ch.Copy([]byte(payload), true, 0)
		require.NoError(t, err)

		got, err := ch.Decrypt(extractKey(t, msg))
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}
}
