// Package postgen runs the post-generation pipeline for a freshly
// scaffolded project: git init, virtual environment creation, dependency
// installation, database initialization, and user hooks. Stages execute
// strictly in order, each gated on the success of the previous one, and
// generated project files are never rolled back here; only the
// environment setup failed, not the scaffold.
package postgen

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per stage.
var (
	// ErrGitInitFailed indicates "git init" exited non-zero.
	ErrGitInitFailed = errors.New("postgen: git init failed")

	// ErrVenvCreateFailed indicates virtual environment creation failed.
	ErrVenvCreateFailed = errors.New("postgen: virtual environment creation failed")

	// ErrDependencyInstall indicates pip install exited non-zero.
	ErrDependencyInstall = errors.New("postgen: dependency installation failed")

	// ErrDatabaseInit indicates a flask db command exited non-zero.
	ErrDatabaseInit = errors.New("postgen: database initialization failed")

	// ErrHookFailed indicates a post-generation hook exited non-zero.
	// Later hooks are skipped; earlier hook effects are kept.
	ErrHookFailed = errors.New("postgen: hook failed")
)

// HookError reports which hook command failed.
type HookError struct {
	Hook   string
	Output string
	Err    error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("postgen: hook %q failed: %v", e.Hook, e.Err)
}

// Unwrap returns ErrHookFailed for errors.Is.
func (e *HookError) Unwrap() error {
	return ErrHookFailed
}
