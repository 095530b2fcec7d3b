package template

import (
	"regexp"
	"strings"

	"github.com/flaskforge/fforge/internal/config"
)

// RenderContext maps placeholder tokens (without braces) to their
// substitution values. It is created fresh for each render pass.
type RenderContext map[string]string

// NewRenderContext builds the project-level context used for the main
// render pass.
func NewRenderContext(cfg *config.ProjectConfig, version string) RenderContext {
	return RenderContext{
		"project_name": cfg.Name,
		"requirements": strings.Join(cfg.Dependencies, "\n"),
		"venv_dir":     cfg.VenvDir,
		"version":      version,
	}
}

// Apply replaces every {{token}} occurrence for tokens present in the
// context. Unknown tokens are left in place; CheckResolved decides whether
// that is an error.
func (c RenderContext) Apply(s string) string {
	if len(c) == 0 {
		return s
	}
	pairs := make([]string, 0, len(c)*2)
	for token, value := range c {
		pairs = append(pairs, "{{"+token+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// placeholderPattern matches {{token}}-shaped markers left after
// substitution.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Za-z_][A-Za-z0-9_]*\}\}`)

// actionsExprPattern matches GitHub Actions expressions like
// ${{ matrix.python-version }}. These are part of the generated CI
// workflow, resolved by GitHub at workflow run time, and must not be
// flagged as leaked placeholders.
var actionsExprPattern = regexp.MustCompile(`\$\{\{[^{}]*\}\}`)

// CheckResolved returns ErrUnresolvedPlaceholder if s still contains a
// placeholder-shaped marker after substitution, masking GitHub Actions
// expressions first.
func CheckResolved(s string) error {
	masked := actionsExprPattern.ReplaceAllString(s, "")
	if loc := placeholderPattern.FindString(masked); loc != "" {
		return &PlaceholderError{Token: loc}
	}
	return nil
}

// PlaceholderError reports which placeholder leaked.
type PlaceholderError struct {
	Token string
}

// Error implements the error interface.
func (e *PlaceholderError) Error() string {
	return "template: unresolved placeholder " + e.Token
}

// Unwrap returns ErrUnresolvedPlaceholder for errors.Is.
func (e *PlaceholderError) Unwrap() error {
	return ErrUnresolvedPlaceholder
}
