package config

// DefaultTemplate is the template used when none is requested.
const DefaultTemplate = "rest_api"

// DefaultVenvDir is the virtual environment directory created inside the
// generated project.
const DefaultVenvDir = ".fforge"

// defaultDependencies is the standard Flask stack installed when the user
// does not supply their own list.
var defaultDependencies = []string{
	"Flask",
	"Flask-CKEditor",
	"Flask-Mail",
	"Flask-Login",
	"Flask-Migrate",
	"Flask-SQLAlchemy",
	"Flask-WTF",
	"email_validator",
	"python-dotenv",
}

// DefaultDependencies returns a copy of the built-in dependency list.
func DefaultDependencies() []string {
	out := make([]string, len(defaultDependencies))
	copy(out, defaultDependencies)
	return out
}

// NewDefaultConfig returns a ProjectConfig populated with built-in defaults.
// Resolve layers the config file and CLI flags on top of this.
func NewDefaultConfig() *ProjectConfig {
	return &ProjectConfig{
		Blueprints:   []string{},
		Dependencies: DefaultDependencies(),
		Verbosity:    0,
		Template:     DefaultTemplate,
		PostGenHooks: []string{},
		VenvDir:      DefaultVenvDir,
	}
}
