// Package cli implements the cargo-license command-line interface.
//
// The single root command reads the project's Cargo.lock through a
// [deps.Source], then prints a license report in one of three modes (see
// [license.Mode]). Flags:
//
//   - -a, --authors: include crate authors
//   - -d, --do-not-bundle: one license per line
//   - -f, --full: CSV with full license texts
//   - --manifest-path: where to start looking for Cargo.lock
//   - --online, --refresh: fill gaps from crates.io
//   - -v, --verbose: debug logging on stderr
//
// # Exit Codes
//
// [CLI.Run] returns 0 on success, 1 when the lockfile is missing or unreadable or any other
// failure occurs, 2 on invalid arguments and 130 when interrupted.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargolicense/pkg/deps"
	"github.com/matzehuels/cargolicense/pkg/deps/rust"
	"github.com/matzehuels/cargolicense/pkg/errors"
)

const appName = "cargo-license"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130 // Standard shell convention for SIGINT
)

// lockfileHint is printed when Cargo.lock is missing or cannot be parsed.
const lockfileHint = "Cargo.lock file not found. Try building the project first."

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // reports and the lockfile diagnostic
	Err    io.Writer // logs and error messages

	// NewSource creates the dependency record source for one invocation.
	NewSource func() deps.Source

	// CacheDir overrides the crates.io response cache location.
	CacheDir string
}

// New creates a CLI writing reports to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(errOut, level),
		Out:       out,
		Err:       errOut,
		NewSource: func() deps.Source { return rust.NewLockfileSource() },
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Run executes the command line args (without the program name) and
// returns the process exit code.
//
// When started by cargo as `cargo license`, the first argument is the
// subcommand name; it is dropped.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) > 0 && args[0] == "license" {
		args = args[1:]
	}
	root := c.RootCommand()
	root.SetArgs(args)
	return c.exitCode(root.ExecuteContext(ctx))
}

func (c *CLI) exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, errors.ErrCodeLockfileNotFound), errors.Is(err, errors.ErrCodeInvalidLockfile):
		fmt.Fprintf(c.Out, "%s\n%s\n", lockfileHint, errors.UserMessage(err))
		return ExitFailure
	case errors.Is(err, errors.ErrCodeUsage):
		printError(c.Err, "%s", errors.UserMessage(err))
		return ExitUsage
	default:
		printError(c.Err, "%s", errors.UserMessage(err))
		return ExitFailure
	}
}
