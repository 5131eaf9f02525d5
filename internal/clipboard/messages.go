// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

// User-facing confirmation messages returned by [Channel.Copy]. Keeping
// them in one place ensures consistent wording across the shell.
const (
	// MsgCopiedPlain confirms an unencrypted copy with scheduled expiry.
	// Formatted with the timeout in seconds.
	MsgCopiedPlain = "DATA INJECTED TO CLIPBOARD. AUTO-CLEAR IN %ds."

	// MsgCopiedPlainNoExpiry confirms an unencrypted copy that persists
	// until a manual clear.
	MsgCopiedPlainNoExpiry = "DATA INJECTED TO CLIPBOARD. PERSISTS UNTIL MANUAL CLEAR."

	// MsgCopiedEncrypted confirms an encrypted copy with scheduled expiry.
	// Formatted with the base64 key and the timeout in seconds. This is
	// the only time the key is ever displayed.
	MsgCopiedEncrypted = "ENCRYPTED DATA INJECTED. KEY: %s\nAUTO-CLEAR IN %ds.\nUse ::decrypt to recover."

	// MsgCopiedEncryptedNoExpiry confirms an encrypted copy that persists
	// until a manual clear. Formatted with the base64 key.
	MsgCopiedEncryptedNoExpiry = "ENCRYPTED DATA INJECTED. KEY: %s\nPERSISTS UNTIL MANUAL CLEAR.\nUse ::decrypt to recover."
)
