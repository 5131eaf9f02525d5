// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package shell routes committed input lines: ::-prefixed ghost commands go
// to the clipboard channel, the security monitor and the input store, cd and
// clear are handled in-process, and everything else is passed through to the
// host shell.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ddanilov/ghost-shell/internal/clipboard"
	"github.com/ddanilov/ghost-shell/internal/config"
	"github.com/ddanilov/ghost-shell/internal/input"
	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/security"
)

// CommandPrefix marks a line as a ghost command rather than a host command.
const CommandPrefix = "::"

// Result is the outcome of one executed line.
type Result struct {
	// Output is appended to the transcript when non-empty.
	Output string
	// ClearScreen requests that the transcript be discarded.
	ClearScreen bool
	// Exit requests a normal shutdown of the shell.
	Exit bool
}

// Dispatcher executes committed lines against the session's components. It
// owns no sensitive state itself; the store and channel do, which is why the
// fail-fast paths tear both down before the process dies.
type Dispatcher struct {
	channel *clipboard.Channel
	monitor *security.Monitor
	session *security.Session
	store   *input.Store
	cfg     *config.Config
	log     *logger.Logger

	// exit is swapped out by tests exercising the fatal paths.
	exit func(int)
}

// NewDispatcher constructs a [Dispatcher] over the session's components.
func NewDispatcher(
	channel *clipboard.Channel,
	monitor *security.Monitor,
	session *security.Session,
	store *input.Store,
	cfg *config.Config,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		channel: channel,
		monitor: monitor,
		session: session,
		store:   store,
		cfg:     cfg,
		log:     log,
		exit:    os.Exit,
	}
}

// Execute runs one committed line and returns its outcome. Every non-blank
// line counts toward the paranoid checkpoint, which runs before the command
// itself so an attached tracer never sees another command execute.
func (d *Dispatcher) Execute(line string) Result {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{}
	}

	d.session.Checkpoint(d.store.RecordCommand())

	if name, ok := strings.CutPrefix(trimmed, CommandPrefix); ok {
		return d.ghost(name)
	}
	return d.host(trimmed)
}

// ghost executes a ::-prefixed command. raw is the line with the prefix
// stripped, e.g. "cp secret value".
func (d *Dispatcher) ghost(raw string) Result {
	name, args, _ := strings.Cut(raw, " ")
	args = strings.TrimSpace(args)

	switch name {
	case "panic":
		d.log.Warn().Msg("panic command, emergency shutdown")
		d.teardown()
		d.exit(security.ExitCodeCompromised)
		return Result{Output: MsgKernelPanic}

	case "status":
		return Result{Output: MsgGhostStatus}

	case "security-status":
		return Result{Output: d.monitor.Probe().Report()}

	case "exit":
		return Result{Exit: true}

	case "clear":
		if err := d.channel.Clear(); err != nil {
			d.log.Error().Err(err).Msg("manual clipboard clear failed")
			return Result{Output: MsgClipboardUnavailable}
		}
		return Result{Output: MsgClipboardWiped}

	case "history":
		return Result{Output: d.history()}

	case "purge-history":
		purged := d.store.PurgeHistory()
		return Result{Output: fmt.Sprintf(MsgHistoryPurged, purged)}

	case "cp":
		if args == "" {
			return Result{Output: MsgNothingToCopy}
		}
		msg, err := d.channel.Copy([]byte(args), !d.cfg.Clipboard.Plaintext, d.cfg.Clipboard.Timeout)
		if err != nil {
			d.log.Error().Err(err).Msg("copy failed")
			return Result{Output: userMessage(err)}
		}
		return Result{Output: msg}

	case "decrypt":
		if args == "" {
			return Result{Output: MsgDecryptUsage}
		}
		text, err := d.channel.Decrypt(args)
		if err != nil {
			d.log.Error().Err(err).Msg("decrypt failed")
			return Result{Output: userMessage(err)}
		}
		return Result{Output: "Decrypted: " + text}

	case "anti-debug":
		pid, attached := d.monitor.TracerAttached()
		if !attached {
			return Result{Output: MsgNoDebugger}
		}
		d.log.Warn().Int("tracer_pid", pid).Msg("tracer detected by anti-debug command")
		if d.session.Paranoid() {
			d.teardown()
			d.exit(security.ExitCodeCompromised)
			return Result{Output: MsgDebuggerFatal}
		}
		return Result{Output: MsgDebuggerDetected}

	case "paranoid":
		return d.paranoid(args)

	default:
		return Result{Output: fmt.Sprintf(MsgUnknownCommand, name)}
	}
}

// paranoid handles the mode toggle. Any argument other than on or off
// reports the current state.
func (d *Dispatcher) paranoid(args string) Result {
	switch args {
	case "on":
		d.session.EnableParanoid()
		return Result{Output: MsgParanoidEnabled}
	case "off":
		d.session.DisableParanoid()
		return Result{Output: MsgParanoidDisabled}
	default:
		state := "DISABLED"
		if d.session.Paranoid() {
			state = "ENABLED"
		}
		return Result{Output: fmt.Sprintf(MsgParanoidStatus, state)}
	}
}

// host executes a non-ghost line: the cd and clear builtins in-process,
// anything else through the host shell.
func (d *Dispatcher) host(trimmed string) Result {
	if trimmed == "clear" {
		return Result{ClearScreen: true}
	}

	if name, args, _ := strings.Cut(trimmed, " "); name == "cd" {
		return d.chdir(strings.TrimSpace(args))
	}

	return d.passthrough(trimmed)
}

// chdir implements the cd builtin. A bare cd goes to the home directory.
func (d *Dispatcher) chdir(target string) Result {
	if target == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Result{Output: "cd: " + err.Error()}
		}
		target = home
	}

	if err := os.Chdir(target); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return Result{Output: fmt.Sprintf("cd: %s: %v", pathErr.Path, pathErr.Err)}
		}
		return Result{Output: "cd: " + err.Error()}
	}
	return Result{}
}

// passthrough runs the line through the user's shell. The child inherits the
// environment but not the terminal, so interactive host programs are not
// supported. Stderr is shown under its own header so a failing command's
// diagnostics stay distinguishable from its output.
func (d *Dispatcher) passthrough(command string) Result {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}

	cmd := exec.Command(sh, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{Output: fmt.Sprintf("Failed to execute process: %v", err)}
		}
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(stdout.String(), "\n"))
	if stderr.Len() > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("STDERR:\n")
		b.WriteString(strings.TrimRight(stderr.String(), "\n"))
	}
	return Result{Output: b.String()}
}

// history renders the committed history, oldest first.
func (d *Dispatcher) history() string {
	entries := d.store.History()
	if len(entries) == 0 {
		return MsgNoHistory
	}

	var b strings.Builder
	b.WriteString("Command History (RAM only):")
	for i, entry := range entries {
		fmt.Fprintf(&b, "\n  %d: %s", i+1, entry)
	}
	return b.String()
}

// teardown erases sensitive state on the way to an abnormal exit. Best
// effort: a clipboard failure at this point is logged and ignored.
func (d *Dispatcher) teardown() {
	d.store.Close()
	if err := d.channel.Clear(); err != nil {
		d.log.Error().Err(err).Msg("clipboard clear during teardown failed")
	}
}

// userMessage maps a clipboard-layer error to its user-facing line. A failed
// integrity check and a malformed envelope read the same on purpose.
func userMessage(err error) string {
	switch {
	case errors.Is(err, clipboard.ErrNotEncrypted):
		return MsgNotEncrypted
	case errors.Is(err, clipboard.ErrAuthenticationFailed), errors.Is(err, clipboard.ErrFormat):
		return MsgDecryptionFailed
	case errors.Is(err, clipboard.ErrClipboardAccess):
		return MsgClipboardUnavailable
	default:
		return err.Error()
	}
}
