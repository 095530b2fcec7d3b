package postgen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/flaskforge/fforge/internal/config"
)

// Stage identifies one step of the post-generation pipeline.
type Stage int

const (
	StageGitInit Stage = iota
	StageCreateVenv
	StageInstallDependencies
	StageInitDatabase
	StageRunHooks
	StageDone
	StageFailed
)

// String returns the stage name for logs and progress display.
func (s Stage) String() string {
	switch s {
	case StageGitInit:
		return "git init"
	case StageCreateVenv:
		return "create virtualenv"
	case StageInstallDependencies:
		return "install dependencies"
	case StageInitDatabase:
		return "initialize database"
	case StageRunHooks:
		return "run hooks"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Option configures a Runner.
type Option func(*Runner)

// WithCommandRunner injects a CommandRunner; tests use this to avoid
// spawning real processes.
func WithCommandRunner(cr CommandRunner) Option {
	return func(r *Runner) {
		r.runner = cr
	}
}

// Runner executes the post-generation stages for one generated project.
// Stages run strictly in order: GitInit (optional) → CreateVenv →
// InstallDependencies → InitDatabase (optional) → RunHooks → Done.
// The first failure transitions to Failed and aborts the remaining
// stages; hooks never run if the dependency install failed.
type Runner struct {
	cfg         *config.ProjectConfig
	projectRoot string
	venvPath    string
	runner      CommandRunner
	logger      *slog.Logger
	stage       Stage
	onStage     func(Stage)
}

// NewRunner creates a Runner for the generated project at projectRoot.
func NewRunner(cfg *config.ProjectConfig, projectRoot string, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		cfg:         cfg,
		projectRoot: projectRoot,
		venvPath:    filepath.Join(projectRoot, cfg.VenvDir),
		runner:      NewCommandRunner(),
		logger:      logger,
		stage:       StageCreateVenv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stage returns the stage the runner is in, StageDone after success or
// StageFailed after the first failure.
func (r *Runner) Stage() Stage {
	return r.stage
}

// OnStage registers a callback invoked when each stage starts.
func (r *Runner) OnStage(fn func(Stage)) {
	r.onStage = fn
}

// Run executes the pipeline. The generated project files are left in
// place on failure; only environment setup was interrupted.
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		stage   Stage
		enabled bool
		fn      func(context.Context) error
	}{
		{StageGitInit, r.cfg.GitInit, r.gitInit},
		{StageCreateVenv, true, r.createVenv},
		{StageInstallDependencies, len(r.cfg.Dependencies) > 0, r.installDependencies},
		{StageInitDatabase, r.cfg.InitDB, r.initDatabase},
		{StageRunHooks, len(r.cfg.PostGenHooks) > 0, r.runHooks},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		r.stage = step.stage
		if r.onStage != nil {
			r.onStage(step.stage)
		}
		r.logger.Info("post-generation stage", "stage", step.stage.String())
		if err := step.fn(ctx); err != nil {
			r.stage = StageFailed
			return err
		}
	}

	r.stage = StageDone
	return nil
}

// gitInit initializes an empty git repository in the project root.
func (r *Runner) gitInit(ctx context.Context) error {
	out, err := r.runner.Run(ctx, Command{
		Name: "git",
		Args: []string{"init"},
		Dir:  r.projectRoot,
	})
	if err != nil {
		return fmt.Errorf("%w: %v: %s", ErrGitInitFailed, err, firstLine(out))
	}
	return nil
}

// createVenv creates the virtual environment with the system interpreter.
func (r *Runner) createVenv(ctx context.Context) error {
	out, err := r.runner.Run(ctx, Command{
		Name: pythonInterpreter(),
		Args: []string{"-m", "venv", r.venvPath},
		Dir:  r.projectRoot,
	})
	if err != nil {
		return fmt.Errorf("%w: %v: %s", ErrVenvCreateFailed, err, firstLine(out))
	}
	r.logger.Debug("virtual environment created", "path", r.venvPath)
	return nil
}

// installDependencies installs the configured packages with the virtual
// environment's own pip, so no shell activation step is needed.
func (r *Runner) installDependencies(ctx context.Context) error {
	args := append([]string{"install"}, r.cfg.Dependencies...)
	out, err := r.runner.Run(ctx, Command{
		Name: venvExecutable(r.venvPath, "pip"),
		Args: args,
		Dir:  r.projectRoot,
	})
	if err != nil {
		return fmt.Errorf("%w: %v: %s", ErrDependencyInstall, err, firstLine(out))
	}
	r.logger.Debug("dependencies installed", "count", len(r.cfg.Dependencies))
	return nil
}

// initDatabase runs the Flask-Migrate setup sequence inside the virtual
// environment.
func (r *Runner) initDatabase(ctx context.Context) error {
	for _, sub := range []string{"init", "migrate", "upgrade"} {
		out, err := r.runner.Run(ctx, Command{
			Name: venvExecutable(r.venvPath, "flask"),
			Args: []string{"db", sub},
			Dir:  r.projectRoot,
			Env:  append(venvEnviron(r.venvPath), "FLASK_APP=main.py"),
		})
		if err != nil {
			return fmt.Errorf("%w: flask db %s: %v: %s", ErrDatabaseInit, sub, err, firstLine(out))
		}
	}
	return nil
}

// runHooks executes each hook sequentially through the platform shell in
// the project root with the virtual environment active. The first
// non-zero exit aborts the remaining hooks; earlier hook effects are not
// rolled back.
func (r *Runner) runHooks(ctx context.Context) error {
	env := venvEnviron(r.venvPath)
	for _, hook := range r.cfg.PostGenHooks {
		name, args := shellCommand(hook)
		r.logger.Debug("running hook", "hook", hook)
		out, err := r.runner.Run(ctx, Command{
			Name: name,
			Args: args,
			Dir:  r.projectRoot,
			Env:  env,
		})
		if err != nil {
			return &HookError{Hook: hook, Output: firstLine(out), Err: err}
		}
	}
	return nil
}

// firstLine trims command output down to something usable in an error
// message.
func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
