package cli

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/flaskforge/fforge/internal/config"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "fforge"}
	addGenerateFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags error: %v", err)
	}
	return cmd
}

func TestOverridesFromFlags(t *testing.T) {
	t.Run("nothing_set", func(t *testing.T) {
		cmd := newTestCommand(t)
		ov := overridesFromFlags(cmd)
		if ov.Template != nil || ov.Blueprints != nil || ov.Dependencies != nil ||
			ov.Verbosity != nil || ov.PostGenHooks != nil || ov.VenvDir != nil ||
			ov.GitInit != nil || ov.InitDB != nil {
			t.Errorf("expected all-nil overrides, got %+v", ov)
		}
	})

	t.Run("explicit_flags_captured", func(t *testing.T) {
		cmd := newTestCommand(t,
			"-b", "auth,blog",
			"-t", "full_stack",
			"-v", "3",
			"-H", "echo a, echo b",
			"--git",
		)
		ov := overridesFromFlags(cmd)

		if ov.Blueprints == nil || !reflect.DeepEqual(*ov.Blueprints, []string{"auth", "blog"}) {
			t.Errorf("Blueprints = %v", ov.Blueprints)
		}
		if ov.Template == nil || *ov.Template != "full_stack" {
			t.Errorf("Template = %v", ov.Template)
		}
		if ov.Verbosity == nil || *ov.Verbosity != 3 {
			t.Errorf("Verbosity = %v", ov.Verbosity)
		}
		if ov.PostGenHooks == nil || !reflect.DeepEqual(*ov.PostGenHooks, []string{"echo a", "echo b"}) {
			t.Errorf("PostGenHooks = %v", ov.PostGenHooks)
		}
		if ov.GitInit == nil || !*ov.GitInit {
			t.Errorf("GitInit = %v", ov.GitInit)
		}
		if ov.InitDB != nil {
			t.Errorf("InitDB should be nil when flag untouched, got %v", ov.InitDB)
		}
	})

	t.Run("default_valued_flag_still_explicit", func(t *testing.T) {
		// Passing -t rest_api explicitly must beat a config file that
		// says full_stack, even though rest_api is also the default.
		cmd := newTestCommand(t, "-t", "rest_api")
		ov := overridesFromFlags(cmd)
		if ov.Template == nil || *ov.Template != "rest_api" {
			t.Fatalf("Template override = %v, want rest_api", ov.Template)
		}
	})
}

func TestNextStepsMarkdown(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Name = "shopapp"
	cfg.Blueprints = []string{"auth"}

	md := nextStepsMarkdown(cfg)
	for _, want := range []string{"cd shopapp", activateHint(".fforge"), "auth"} {
		if !strings.Contains(md, want) {
			t.Errorf("next steps missing %q:\n%s", want, md)
		}
	}
}

func TestActivateHintMatchesPlatformLayout(t *testing.T) {
	hint := activateHint(".fforge")
	if runtime.GOOS == "windows" {
		want := filepath.Join(".fforge", "Scripts", "activate")
		if hint != want {
			t.Fatalf("activateHint = %q, want %q", hint, want)
		}
		return
	}
	if hint != "source .fforge/bin/activate" {
		t.Fatalf("activateHint = %q, want source .fforge/bin/activate", hint)
	}
}
