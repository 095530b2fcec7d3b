package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/flaskforge/fforge/internal/config"
	"github.com/flaskforge/fforge/internal/ui"
)

// activateHint returns the shell command that activates the generated
// virtual environment on the current platform, mirroring the layout the
// post-generation runner creates (Scripts on Windows, bin elsewhere).
func activateHint(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "activate")
	}
	return "source " + venvDir + "/bin/activate"
}

// printSummary prints the success line and, on a terminal, a rendered
// next-steps panel.
func printSummary(w io.Writer, theme *ui.Theme, headless *ui.HeadlessManager, cfg *config.ProjectConfig) {
	fmt.Fprintln(w, theme.Success.Render(fmt.Sprintf("✓ project %s created", cfg.Name)))

	if headless.IsHeadless() || theme.NoColor {
		fmt.Fprintf(w, "next: cd %s && %s\n", cfg.Name, activateHint(cfg.VenvDir))
		return
	}

	md := nextStepsMarkdown(cfg)
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// nextStepsMarkdown builds the post-generation guidance shown to the user.
func nextStepsMarkdown(cfg *config.ProjectConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Next steps\n\n")
	fmt.Fprintf(&b, "```sh\ncd %s\n%s\nflask --app main run\n```\n\n", cfg.Name, activateHint(cfg.VenvDir))
	if len(cfg.Blueprints) > 0 {
		fmt.Fprintf(&b, "Blueprints registered under `%s/`: %s.\n", cfg.Name, strings.Join(cfg.Blueprints, ", "))
		fmt.Fprintf(&b, "Each blueprint still needs `app.register_blueprint(...)` in `%s/__init__.py`.\n\n", cfg.Name)
	}
	fmt.Fprintf(&b, "Docker: `docker compose up` builds and serves on port 5000.\n")
	return b.String()
}
