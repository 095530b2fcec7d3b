package config

import (
	"regexp"
	"slices"
)

// projectNamePattern restricts project names to safe single path segments.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// venvDirPattern is projectNamePattern plus an optional leading dot, so
// hidden directories like the default ".fforge" are accepted.
var venvDirPattern = regexp.MustCompile(`^\.?[A-Za-z0-9][A-Za-z0-9._-]*$`)

// blueprintNamePattern restricts blueprint names to valid Python
// identifiers, since they become module and variable names in the
// generated code.
var blueprintNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks a resolved ProjectConfig against the given set of
// registered template names. It returns a *ValidationErrors collecting
// every problem found; errors.Is reports ErrInvalidConfig for any failure
// and ErrUnknownTemplate when the template name is not registered.
func Validate(cfg *ProjectConfig, templates []string) error {
	var errs []ValidationError

	if cfg.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "project_name",
			Message: "project name must not be empty",
		})
	} else if !projectNamePattern.MatchString(cfg.Name) {
		errs = append(errs, ValidationError{
			Field:   "project_name",
			Message: "project name must be a valid directory name",
			Value:   cfg.Name,
		})
	}

	if !slices.Contains(templates, cfg.Template) {
		errs = append(errs, ValidationError{
			Field:   "template",
			Message: "template is not registered",
			Value:   cfg.Template,
			Wrapped: ErrUnknownTemplate,
		})
	}

	if cfg.Verbosity < 0 || cfg.Verbosity > 4 {
		errs = append(errs, ValidationError{
			Field:   "verbosity",
			Message: "verbosity must be between 0 and 4",
			Value:   cfg.Verbosity,
		})
	}

	for _, bp := range cfg.Blueprints {
		if !blueprintNamePattern.MatchString(bp) {
			errs = append(errs, ValidationError{
				Field:   "blueprints",
				Message: "blueprint name must be a valid identifier",
				Value:   bp,
			})
		}
	}

	if cfg.VenvDir == "" {
		errs = append(errs, ValidationError{
			Field:   "venv_dir",
			Message: "virtual environment directory must not be empty",
		})
	} else if !venvDirPattern.MatchString(cfg.VenvDir) {
		errs = append(errs, ValidationError{
			Field:   "venv_dir",
			Message: "virtual environment directory must be a valid directory name",
			Value:   cfg.VenvDir,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
