package config

import "log/slog"

// ProjectConfig is the fully resolved configuration for one generation run.
// It is built once by Resolve and never mutated afterwards.
//
// The json and yaml tags describe the config file schema; every field a CLI
// flag can set is also settable from the file.
type ProjectConfig struct {
	// Name is the project name, used both as the destination directory
	// and as the application package name inside it.
	Name string `json:"project_name" yaml:"project_name"`

	// Blueprints lists the blueprint sub-modules to generate, in the
	// order given. Duplicates are dropped, first occurrence wins.
	Blueprints []string `json:"blueprints" yaml:"blueprints"`

	// Dependencies lists the Python packages written to requirements.txt
	// and installed into the virtual environment. Treated as a set with
	// first-occurrence ordering.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	// Verbosity selects the log level: 0 (critical only) through 4 (debug).
	Verbosity int `json:"verbosity" yaml:"verbosity"`

	// Template names the project template to instantiate.
	Template string `json:"template" yaml:"template"`

	// ConfigPath records where the config file was loaded from, if any.
	ConfigPath string `json:"config_path" yaml:"config_path"`

	// PostGenHooks lists shell commands run after generation, in order.
	PostGenHooks []string `json:"post_gen_hooks" yaml:"post_gen_hooks"`

	// VenvDir is the virtual environment directory name, relative to the
	// generated project root.
	VenvDir string `json:"venv_dir" yaml:"venv_dir"`

	// GitInit enables running "git init" in the generated project.
	GitInit bool `json:"git_init" yaml:"git_init"`

	// InitDB enables running "flask db init/migrate/upgrade" after the
	// dependency install.
	InitDB bool `json:"init_db" yaml:"init_db"`
}

// LogLevel maps the 0..4 verbosity scale to a slog level. Verbosity 0
// suppresses everything below critical, matching the scale the CLI
// documents: 0 CRITICAL, 1 ERROR, 2 WARNING, 3 INFO, 4 DEBUG.
func (c *ProjectConfig) LogLevel() slog.Level {
	switch c.Verbosity {
	case 0:
		return slog.LevelError + 4
	case 1:
		return slog.LevelError
	case 2:
		return slog.LevelWarn
	case 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
