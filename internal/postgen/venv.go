package postgen

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// venvBinDir returns the executables directory inside a virtual
// environment: Scripts on Windows, bin elsewhere.
func venvBinDir(venvPath string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvPath, "Scripts")
	}
	return filepath.Join(venvPath, "bin")
}

// venvExecutable returns the path of a tool installed in the virtual
// environment (pip, flask, ...).
func venvExecutable(venvPath, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(venvBinDir(venvPath), name)
}

// pythonInterpreter returns the interpreter used to create the virtual
// environment, preferring python3 when it is on PATH.
func pythonInterpreter() string {
	if _, err := exec.LookPath("python3"); err == nil {
		return "python3"
	}
	return "python"
}

// venvEnviron returns the process environment with the virtual
// environment activated: VIRTUAL_ENV set and the venv bin directory
// first on PATH. This is the non-shell equivalent of sourcing the
// activate script before each command.
func venvEnviron(venvPath string) []string {
	env := os.Environ()
	out := make([]string, 0, len(env)+2)
	out = append(out, "VIRTUAL_ENV="+venvPath)
	binDir := venvBinDir(venvPath)
	pathSet := false
	for _, kv := range env {
		if len(kv) >= 5 && (kv[:5] == "PATH=") {
			out = append(out, "PATH="+binDir+string(os.PathListSeparator)+kv[5:])
			pathSet = true
			continue
		}
		if len(kv) >= 12 && kv[:12] == "VIRTUAL_ENV=" {
			continue
		}
		out = append(out, kv)
	}
	if !pathSet {
		out = append(out, "PATH="+binDir)
	}
	return out
}

// shellCommand wraps a user hook in the platform shell.
func shellCommand(hook string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", hook}
	}
	return "sh", []string{"-c", hook}
}
