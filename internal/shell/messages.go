// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package shell

// All Msg* constants are human-readable strings written to the terminal to
// describe the outcome of a command. Keeping them in one place ensures
// consistent wording throughout the shell.
const (
	// MsgGhostStatus is the reply to the status command.
	MsgGhostStatus = "GHOST MODE ACTIVE. MEMORY SECURE. TRACE: NONE."

	// MsgKernelPanic is printed by the panic command before the process
	// dies with the abnormal exit code.
	MsgKernelPanic = "KERNEL PANIC - MEMORY CORRUPTION DETECTED at 0xDEADBEEF\nDumping core to /dev/null..."

	// MsgNoHistory is the reply to the history command when nothing has
	// been committed yet.
	MsgNoHistory = "No commands in history."

	// MsgHistoryPurged confirms an explicit history purge. Formatted with
	// the number of destroyed entries.
	MsgHistoryPurged = "HISTORY PURGED. %d COMMANDS ZEROIZED FROM MEMORY."

	// MsgNothingToCopy is returned when the cp command has no argument.
	MsgNothingToCopy = "Error: No content to copy."

	// MsgDecryptUsage is returned when the decrypt command has no key.
	MsgDecryptUsage = "Usage: ::decrypt <key>"

	// MsgNotEncrypted is returned when decrypt finds no envelope on the
	// clipboard.
	MsgNotEncrypted = "Clipboard does not contain encrypted Ghost Shell data."

	// MsgDecryptionFailed covers both a failed integrity check and a
	// malformed envelope or key. The two cases are deliberately
	// indistinguishable to the user.
	MsgDecryptionFailed = "Decryption failed. Wrong key or corrupted data."

	// MsgClipboardUnavailable is returned when the OS clipboard resource
	// cannot be reached.
	MsgClipboardUnavailable = "Failed to access clipboard."

	// MsgClipboardWiped confirms an immediate manual clipboard clear.
	MsgClipboardWiped = "CLIPBOARD WIPED."

	// MsgDebuggerDetected is printed on the advisory anti-debug path.
	MsgDebuggerDetected = "⚠ WARNING: DEBUGGER DETECTED!"

	// MsgDebuggerFatal is printed before the paranoid fail-fast exit.
	MsgDebuggerFatal = "⚠ DEBUGGER DETECTED - PARANOID MODE ACTIVE\nINITIATING EMERGENCY SHUTDOWN..."

	// MsgNoDebugger is printed when the anti-debug check comes back clean.
	MsgNoDebugger = "✓ No debugger detected."

	// MsgParanoidEnabled confirms entering paranoid mode.
	MsgParanoidEnabled = "⚠ PARANOID MODE ENABLED\n- Auto-panic on debugger detection\n- Periodic security checks every 5 commands\n- Enhanced threat monitoring"

	// MsgParanoidDisabled confirms leaving paranoid mode.
	MsgParanoidDisabled = "PARANOID MODE DISABLED"

	// MsgParanoidStatus reports the current mode when no argument is
	// given. Formatted with ENABLED or DISABLED.
	MsgParanoidStatus = "Paranoid mode: %s\nUsage: ::paranoid on|off"

	// MsgUnknownCommand is returned for an unrecognised ghost command.
	// Formatted with the command name.
	MsgUnknownCommand = "Unknown GHOST command: '%s'"
)
