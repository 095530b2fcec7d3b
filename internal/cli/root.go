// Package cli wires the fforge command line: flag parsing, configuration
// resolution, and orchestration of the template engine and the
// post-generation pipeline.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flaskforge/fforge/internal/cli/wizard"
	"github.com/flaskforge/fforge/internal/config"
	"github.com/flaskforge/fforge/internal/postgen"
	"github.com/flaskforge/fforge/internal/template"
	"github.com/flaskforge/fforge/internal/ui"
	"github.com/flaskforge/fforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fforge [project-name]",
	Short: "FlaskForge: scaffold a Flask project in one command",
	Long: `FlaskForge generates a ready-to-run Flask project: application
package, blueprints, Docker files, CI workflow, requirements, a virtual
environment with dependencies installed, and optional post-generation
hooks.

Run without a project name on a terminal to use the interactive wizard.`,
	Version:      version.GetVersion(),
	Args:         cobra.MaximumNArgs(1),
	RunE:         runGenerate,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("fforge %s\n", version.GetFullVersion()))
	addGenerateFlags(rootCmd)
}

// addGenerateFlags registers the generation flags on cmd.
func addGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("blueprints", "b", "", "Comma-separated list of blueprints")
	flags.StringP("dependencies", "D", "", "Comma-separated list of dependencies (default: the Flask stack)")
	flags.IntP("verbosity", "v", 0, "Logging verbosity: 0 (critical) to 4 (debug)")
	flags.StringP("template", "t", config.DefaultTemplate, "Project template (rest_api, full_stack)")
	flags.StringP("config", "c", "", "Path to a JSON or YAML configuration file")
	flags.StringP("post-gen-hooks", "H", "", "Comma-separated shell commands run after generation")
	flags.StringP("venv-dir", "e", config.DefaultVenvDir, "Virtual environment directory name")
	flags.Bool("git", false, "Run git init in the generated project")
	flags.Bool("init-db", false, "Run flask db init/migrate/upgrade after the install")
	flags.Bool("no-input", false, "Never prompt; fail instead of starting the wizard")
	flags.Bool("no-color", false, "Disable colored output")
}

// overridesFromFlags collects the flags the user explicitly set, so they
// take precedence over config file values during resolution.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var ov config.Overrides

	if flags.Changed("blueprints") {
		v, _ := flags.GetString("blueprints")
		list := config.SplitList(v)
		ov.Blueprints = &list
	}
	if flags.Changed("dependencies") {
		v, _ := flags.GetString("dependencies")
		list := config.SplitList(v)
		ov.Dependencies = &list
	}
	if flags.Changed("verbosity") {
		v, _ := flags.GetInt("verbosity")
		ov.Verbosity = &v
	}
	if flags.Changed("template") {
		v, _ := flags.GetString("template")
		ov.Template = &v
	}
	if flags.Changed("post-gen-hooks") {
		v, _ := flags.GetString("post-gen-hooks")
		list := config.SplitList(v)
		ov.PostGenHooks = &list
	}
	if flags.Changed("venv-dir") {
		v, _ := flags.GetString("venv-dir")
		ov.VenvDir = &v
	}
	if flags.Changed("git") {
		v, _ := flags.GetBool("git")
		ov.GitInit = &v
	}
	if flags.Changed("init-db") {
		v, _ := flags.GetBool("init-db")
		ov.InitDB = &v
	}

	return ov
}

// runGenerate is the whole pipeline: resolve → catalog → expand → render
// → post-generation.
func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	noColor, _ := flags.GetBool("no-color")
	noInput, _ := flags.GetBool("no-input")
	configPath, _ := flags.GetString("config")

	theme := ui.NewTheme(noColor)
	headless := ui.NewHeadlessManager()
	catalog := template.NewCatalog()

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	ov := overridesFromFlags(cmd)

	// No project name and a live terminal: run the wizard. Flags the
	// user did set still win over wizard answers.
	if name == "" && configPath == "" && !noInput && !headless.IsHeadless() {
		answers, err := wizard.Run(catalog.Names(), config.DefaultTemplate)
		if err != nil {
			return err
		}
		name = answers.ProjectName
		if ov.Template == nil {
			ov.Template = &answers.Template
		}
		if ov.Blueprints == nil {
			list := config.SplitList(answers.Blueprints)
			ov.Blueprints = &list
		}
		if ov.GitInit == nil {
			ov.GitInit = &answers.GitInit
		}
		if ov.InitDB == nil {
			ov.InitDB = &answers.InitDB
		}
	}

	cfg, err := config.Resolve(name, configPath, ov)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg, catalog.Names()); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))

	tree, err := template.BuildProjectTree(catalog, cfg)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	destRoot := filepath.Join(cwd, cfg.Name)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bar := ui.NewProgress(theme, headless).Start("rendering "+cfg.Name, tree.Files())
	engine := template.NewEngine(logger)
	engine.OnFile(func(rel string) {
		bar.SetTitle(rel)
		bar.Increment(1)
	})

	if err := engine.Render(ctx, tree, destRoot, template.NewRenderContext(cfg, version.GetVersion())); err != nil {
		bar.Done()
		return err
	}
	bar.Done()

	runner := postgen.NewRunner(cfg, destRoot, logger)
	runner.OnStage(func(stage postgen.Stage) {
		fmt.Fprintln(cmd.OutOrStdout(), theme.Faint.Render("→ "+stage.String()))
	})
	if err := runner.Run(ctx); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), theme.Err.Render("project files were generated, but environment setup failed"))
		return err
	}

	printSummary(cmd.OutOrStdout(), theme, headless, cfg)
	return nil
}
