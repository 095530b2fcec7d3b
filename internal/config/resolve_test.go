package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve("myapp", "", Overrides{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if cfg.Name != "myapp" {
		t.Errorf("Name = %q, want %q", cfg.Name, "myapp")
	}
	if cfg.Template != "rest_api" {
		t.Errorf("Template = %q, want rest_api", cfg.Template)
	}
	if cfg.VenvDir != ".fforge" {
		t.Errorf("VenvDir = %q, want .fforge", cfg.VenvDir)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
	if !reflect.DeepEqual(cfg.Dependencies, DefaultDependencies()) {
		t.Errorf("Dependencies = %v, want default Flask stack", cfg.Dependencies)
	}
	if len(cfg.Blueprints) != 0 {
		t.Errorf("Blueprints = %v, want empty", cfg.Blueprints)
	}
}

func TestResolveFileOverDefaults(t *testing.T) {
	path := writeConfigFile(t, "fforge.json", `{
		"project_name": "fromfile",
		"template": "full_stack",
		"verbosity": 3,
		"blueprints": ["auth", "blog"],
		"venv_dir": ".venv"
	}`)

	cfg, err := Resolve("", path, Overrides{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if cfg.Name != "fromfile" {
		t.Errorf("Name = %q, want fromfile", cfg.Name)
	}
	if cfg.Template != "full_stack" {
		t.Errorf("Template = %q, want full_stack", cfg.Template)
	}
	if cfg.Verbosity != 3 {
		t.Errorf("Verbosity = %d, want 3", cfg.Verbosity)
	}
	if !reflect.DeepEqual(cfg.Blueprints, []string{"auth", "blog"}) {
		t.Errorf("Blueprints = %v, want [auth blog]", cfg.Blueprints)
	}
	// Fields absent from the file keep their defaults.
	if !reflect.DeepEqual(cfg.Dependencies, DefaultDependencies()) {
		t.Errorf("Dependencies = %v, want default Flask stack", cfg.Dependencies)
	}
}

func TestResolveCLIBeatsFile(t *testing.T) {
	path := writeConfigFile(t, "fforge.json", `{"template": "full_stack"}`)

	tmpl := "rest_api"
	cfg, err := Resolve("myapp", path, Overrides{Template: &tmpl})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if cfg.Template != "rest_api" {
		t.Errorf("Template = %q, want rest_api (CLI wins over file)", cfg.Template)
	}
}

func TestResolvePositionalNameBeatsFile(t *testing.T) {
	path := writeConfigFile(t, "fforge.json", `{"project_name": "fromfile"}`)

	cfg, err := Resolve("fromcli", path, Overrides{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if cfg.Name != "fromcli" {
		t.Errorf("Name = %q, want fromcli", cfg.Name)
	}
}

func TestResolveYAMLFile(t *testing.T) {
	path := writeConfigFile(t, "fforge.yaml", "project_name: yamlapp\nverbosity: 2\n")

	cfg, err := Resolve("", path, Overrides{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if cfg.Name != "yamlapp" || cfg.Verbosity != 2 {
		t.Errorf("got name=%q verbosity=%d, want yamlapp/2", cfg.Name, cfg.Verbosity)
	}
}

func TestResolveBadFile(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := Resolve("myapp", filepath.Join(t.TempDir(), "nope.json"), Overrides{})
		if !errors.Is(err, ErrInvalidConfigFile) {
			t.Errorf("expected ErrInvalidConfigFile, got %v", err)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("unparseable_json", func(t *testing.T) {
		path := writeConfigFile(t, "bad.json", "{not json")
		_, err := Resolve("myapp", path, Overrides{})
		if !errors.Is(err, ErrInvalidConfigFile) {
			t.Errorf("expected ErrInvalidConfigFile, got %v", err)
		}
	})
}

func TestResolveDedupesAndTrims(t *testing.T) {
	bps := []string{" auth ", "blog", "auth", ""}
	deps := []string{"Flask", "Flask", " gunicorn "}
	cfg, err := Resolve("myapp", "", Overrides{Blueprints: &bps, Dependencies: &deps})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Blueprints, []string{"auth", "blog"}) {
		t.Errorf("Blueprints = %v, want [auth blog]", cfg.Blueprints)
	}
	if !reflect.DeepEqual(cfg.Dependencies, []string{"Flask", "gunicorn"}) {
		t.Errorf("Dependencies = %v, want [Flask gunicorn]", cfg.Dependencies)
	}
}

func TestSplitList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "auth", []string{"auth"}},
		{"spaces", " auth , blog ", []string{"auth", "blog"}},
		{"trailing_comma", "auth,blog,", []string{"auth", "blog"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
