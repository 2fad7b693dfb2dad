// Package ports defines the core interfaces for the application.
package ports

import "context"

// Command is one external process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string
	// Dir is the working directory.
	Dir string
	// Env holds extra "KEY=VALUE" entries layered over the process environment.
	Env []string
	// Stdin is fed to the process.
	Stdin []byte
}

// CommandRunner runs external commands.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its standard output. Standard error is
	// streamed to the vertex in ctx, or to the logger.
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
