// internal/executil/executil.go
package executil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Mask replaces sensitive values in printable commands.
const Mask = "***"

// Arg is a single argv element. Name is set for KEY=VALUE pairs.
type Arg struct {
	Name      string
	Value     string
	Sensitive bool
}

// Plain returns non-sensitive positional args.
func Plain(vals ...string) []Arg {
	out := make([]Arg, 0, len(vals))
	for _, v := range vals {
		out = append(out, Arg{Value: v})
	}
	return out
}

// Pair returns a KEY=VALUE arg.
func Pair(name, value string) Arg {
	return Arg{Name: name, Value: value}
}

// SecretPair returns a KEY=VALUE arg whose value never shows up in logs.
func SecretPair(name, value string) Arg {
	return Arg{Name: name, Value: value, Sensitive: true}
}

// String is the literal argv element handed to the process.
func (a Arg) String() string {
	if a.Name == "" {
		return a.Value
	}
	return a.Name + "=" + a.Value
}

// Masked is the printable form; sensitive values become Mask, the key stays.
func (a Arg) Masked() string {
	if !a.Sensitive {
		return a.String()
	}
	if a.Name == "" {
		return Mask
	}
	return a.Name + "=" + Mask
}

// Command is an external program invocation. It is never run through a shell.
type Command struct {
	Name string
	Args []Arg
}

// New creates a command from plain args.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: Plain(args...)}
}

// With returns a copy of c with args appended.
func (c Command) With(args ...Arg) Command {
	out := Command{Name: c.Name, Args: make([]Arg, 0, len(c.Args)+len(args))}
	out.Args = append(out.Args, c.Args...)
	out.Args = append(out.Args, args...)
	return out
}

// Argv returns the real arguments, secrets included.
func (c Command) Argv() []string {
	argv := make([]string, len(c.Args))
	for i, a := range c.Args {
		argv[i] = a.String()
	}
	return argv
}

// String renders the command for logs with sensitive values masked.
// Masked args are printed bare; everything else is shell-quoted.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a.Sensitive {
			parts[i] = a.Masked()
			continue
		}
		parts[i] = shellQuote(a.String())
	}
	return c.Name + " " + strings.Join(parts, " ")
}

// ExitError reports a process that ran and exited non-zero.
type ExitError struct {
	Code    int
	Command string // masked
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed (exit=%d): %s", e.Code, e.Command)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes in Dir.
// Nil Stdout/Stderr inherit the parent's streams.
type ExecRunner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes cmd and blocks until it exits.
func (r ExecRunner) Run(ctx context.Context, cmd Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Argv()...)
	c.Dir = r.Dir
	c.Stdout = r.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = r.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if err := c.Run(); err != nil {
		// context cancellations show clearly
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "command interrupted: %s", cmd)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode(), Command: cmd.String(), Err: err}
		}
		return errors.Wrapf(err, "failed to run command: %s", cmd)
	}
	return nil
}

// DryRunner logs commands instead of running them.
type DryRunner struct {
	Log *zap.Logger
}

// Run never executes anything.
func (r DryRunner) Run(_ context.Context, cmd Command) error {
	if r.Log != nil {
		r.Log.Info("[DRY RUN] Skipping command", zap.String("command", cmd.String()))
	}
	return nil
}

// shellQuote returns a printable, shell-safe form of a.
func shellQuote(a string) string {
	if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
		return "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return a
}
