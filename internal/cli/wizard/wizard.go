// Package wizard implements the interactive prompts shown when fforge is
// started without a project name on a terminal.
package wizard

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
)

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard: cancelled by user")

// Result carries the answers collected by the wizard.
type Result struct {
	ProjectName string
	Template    string
	Blueprints  string // comma-separated, parsed by the resolver
	GitInit     bool
	InitDB      bool
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// validateName rejects names that cannot become a directory.
func validateName(s string) error {
	if s == "" {
		return errors.New("project name must not be empty")
	}
	if !namePattern.MatchString(s) {
		return errors.New("project name must be a valid directory name")
	}
	return nil
}

// Run executes the wizard. templates is the list of selectable template
// names from the catalog; defaultTemplate is preselected.
func Run(templates []string, defaultTemplate string) (*Result, error) {
	result := &Result{Template: defaultTemplate}

	options := make([]huh.Option[string], 0, len(templates))
	for _, name := range templates {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("my-app").
				Validate(validateName).
				Value(&result.ProjectName),
			huh.NewSelect[string]().
				Title("Project template").
				Options(options...).
				Value(&result.Template),
			huh.NewInput().
				Title("Blueprints").
				Description("Comma-separated blueprint names, empty for none").
				Placeholder("auth,blog").
				Value(&result.Blueprints),
			huh.NewConfirm().
				Title("Initialize a git repository?").
				Value(&result.GitInit),
			huh.NewConfirm().
				Title("Initialize the database (flask db)?").
				Value(&result.InitDB),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return result, nil
}
