// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner defines the interface for executing the wrapped compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run invokes the compiler with the given arguments and returns its
	// exit code together with the combined stdout/stderr output.
	//
	// A nonzero exit code is not an error; err is reserved for failures to
	// launch the process at all.
	Run(ctx context.Context, args []string) (exitCode int, output string, err error)
}
