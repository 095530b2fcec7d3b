package config

import "strings"

// Overrides carries the CLI flag values that were explicitly set on the
// command line. Nil fields were not given and do not participate in the
// merge; this is how "explicit CLI flag beats config file" is expressed
// without sentinel values.
type Overrides struct {
	Blueprints   *[]string
	Dependencies *[]string
	Verbosity    *int
	Template     *string
	PostGenHooks *[]string
	VenvDir      *string
	GitInit      *bool
	InitDB       *bool
}

// Resolve merges built-in defaults, the optional config file at configPath,
// and explicit CLI overrides into one ProjectConfig, in that precedence
// order (lowest first). name is the positional project name argument; when
// non-empty it always wins over a project_name from the file.
//
// Resolve performs the pure merge only; call Validate on the result before
// acting on it.
func Resolve(name, configPath string, ov Overrides) (*ProjectConfig, error) {
	cfg := NewDefaultConfig()

	if configPath != "" {
		if err := LoadFile(configPath, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ConfigPath = configPath

	if name != "" {
		cfg.Name = name
	}
	if ov.Blueprints != nil {
		cfg.Blueprints = *ov.Blueprints
	}
	if ov.Dependencies != nil {
		cfg.Dependencies = *ov.Dependencies
	}
	if ov.Verbosity != nil {
		cfg.Verbosity = *ov.Verbosity
	}
	if ov.Template != nil {
		cfg.Template = *ov.Template
	}
	if ov.PostGenHooks != nil {
		cfg.PostGenHooks = *ov.PostGenHooks
	}
	if ov.VenvDir != nil {
		cfg.VenvDir = *ov.VenvDir
	}
	if ov.GitInit != nil {
		cfg.GitInit = *ov.GitInit
	}
	if ov.InitDB != nil {
		cfg.InitDB = *ov.InitDB
	}

	cfg.Blueprints = dedupe(trimAll(cfg.Blueprints))
	cfg.Dependencies = dedupe(trimAll(cfg.Dependencies))
	cfg.PostGenHooks = trimAll(cfg.PostGenHooks)

	return cfg, nil
}

// SplitList parses a comma-separated flag value into a clean slice,
// dropping empty entries. An empty input yields an empty slice.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return trimAll(strings.Split(s, ","))
}

// trimAll trims whitespace from every entry and drops entries that end up
// empty, preserving order.
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dedupe removes duplicate entries, keeping the first occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
