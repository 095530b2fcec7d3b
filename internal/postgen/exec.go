package postgen

import (
	"context"
	"os/exec"
)

// Command describes one external command invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // nil inherits the parent environment
}

// CommandRunner executes external commands synchronously, returning the
// combined output. The production implementation shells out; tests inject
// a fake.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// execCommandRunner runs commands with os/exec, blocking until exit.
type execCommandRunner struct{}

// NewCommandRunner returns the os/exec backed CommandRunner.
func NewCommandRunner() CommandRunner {
	return execCommandRunner{}
}

// Run executes the command and waits for it to finish.
func (execCommandRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if cmd.Env != nil {
		c.Env = cmd.Env
	}
	return c.CombinedOutput()
}
