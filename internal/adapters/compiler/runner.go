// Package compiler provides the compiler runner adapter.
package compiler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"

	"go.trai.ch/zerr"

	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
//
// Arguments are always passed through a response file. The build system
// expands params files into the request before handing it to us, so the
// reassembled command line can exceed OS argv limits; a response file
// sidesteps those limits without guessing at them.
type Runner struct {
	argv []string
}

// NewRunner creates a Runner that invokes the compiler command configured
// in cfg.
func NewRunner(cfg *domain.Config) *Runner {
	return &Runner{argv: slices.Clone(cfg.Compiler)}
}

// Run invokes the compiler with the given arguments and returns its exit
// code and combined output. Stdout is folded into the captured output so
// that nothing the compiler prints can leak into the worker protocol
// stream.
func (r *Runner) Run(ctx context.Context, args []string) (int, string, error) {
	if len(r.argv) == 0 {
		return 0, "", zerr.New("no compiler command configured")
	}

	params, err := writeResponseFile(args)
	if err != nil {
		return 0, "", err
	}
	defer os.Remove(params) //nolint:errcheck // Best effort temp cleanup

	cmdArgs := append(slices.Clone(r.argv[1:]), "@"+params)
	cmd := exec.CommandContext(ctx, r.argv[0], cmdArgs...) //nolint:gosec // Compiler command comes from configuration

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), output.String(), nil
		}
		return -1, output.String(), zerr.With(zerr.Wrap(err, "failed to run compiler"), "compiler", r.argv[0])
	}

	return 0, output.String(), nil
}

// writeResponseFile writes one argument per line to a temporary params
// file and returns its path.
func writeResponseFile(args []string) (string, error) {
	f, err := os.CreateTemp("", "swiftwrap_params.*")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create response file")
	}

	var buf bytes.Buffer
	for _, arg := range args {
		buf.WriteString(arg)
		buf.WriteByte('\n')
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, "failed to write response file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", zerr.Wrap(err, "failed to close response file")
	}

	return f.Name(), nil
}
