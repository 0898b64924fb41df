package exec

import (
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"os/signal"
	"syscall"

	"al.essio.dev/pkg/shellescape"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/preform/errors"
	"github.com/cloudposse/preform/pkg/config"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/schema"
)

// CommandRunner starts an external command and waits for it to exit.
//
//go:generate go run go.uber.org/mock/mockgen@latest -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type CommandRunner interface {
	Run(command string, args []string, env []string) error
}

// processRunner runs commands as child processes sharing the given standard streams.
type processRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewProcessRunner returns a CommandRunner whose children inherit this process's standard streams.
func NewProcessRunner() CommandRunner {
	return &processRunner{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Run passes command and each arg as separate argv elements; no shell is involved.
// It blocks until the child exits, even when preform is interrupted.
func (r *processRunner) Run(command string, args []string, env []string) error {
	cmd := osexec.Command(command, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	// Installed before Start so no signal can end preform while the child is running.
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigs)
		close(sigs)
	}()

	log.Debug("Executing", "command", cmd.String())
	if err := cmd.Start(); err != nil {
		return err
	}
	go relaySignals(sigs, cmd.Process)

	return cmd.Wait()
}

// relaySignals keeps preform alive until the child exits. Terminal interrupts already reach the
// child through the process group, so SIGINT is only absorbed; SIGTERM is forwarded.
func relaySignals(sigs <-chan os.Signal, child *os.Process) {
	for sig := range sigs {
		if sig != syscall.SIGTERM {
			log.Debug("Waiting for command to handle signal", "signal", sig)
			continue
		}
		log.Debug("Forwarding signal to command", "signal", sig, "pid", child.Pid)
		if err := child.Signal(sig); err != nil {
			log.Debug("Failed to forward signal", "signal", sig, "error", err)
		}
	}
}

// ExecuteShellCommand forwards the passthrough tokens to the configured command.
// It does nothing when there are no tokens. The child's exit status is not propagated;
// only a failure to start the command is an error.
func ExecuteShellCommand(
	runner CommandRunner,
	cfg schema.Configuration,
	args schema.ArgsInfo,
	session schema.SessionState,
	out io.Writer,
) error {
	if len(args.Command) == 0 {
		log.Debug("No command to forward", "command", cfg.Command)
		return nil
	}

	env := []string{fmt.Sprintf("%s=%s", config.SelectedEnvVar, session.Env)}

	if args.DryRun {
		_, err := fmt.Fprintln(out, shellescape.QuoteCommand(append([]string{cfg.Command}, args.Command...)))
		return err
	}

	err := runner.Run(cfg.Command, args.Command, env)
	if err == nil {
		return nil
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		log.Debug("Command exited", "command", cfg.Command, "code", exitErr.ExitCode())
		return nil
	}

	b := errUtils.Build(errors.Join(errUtils.ErrStartCommand, err)).WithContext("command", cfg.Command)
	if errors.Is(err, osexec.ErrNotFound) {
		b = b.WithHintf("Install `%s` or set `command` in preform.yaml", cfg.Command)
	}
	return b.Err()
}
