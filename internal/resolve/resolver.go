// Package resolve turns user-supplied path strings into verified,
// absolute scan roots. It owns the cosmetic alias lookup and all
// environment expansion; the scan engine itself only ever sees an
// existing directory or a typed failure.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// downloadAliases are the shorthand names accepted for the user's
// downloads folder.
var downloadAliases = map[string]struct{}{
	"downloads": {},
	"download":  {},
	"dl":        {},
}

// Error is a failed resolution. Resolved carries the absolute path that
// was attempted, for diagnostics.
type Error struct {
	Input    string
	Resolved string
	Detail   string
}

func (e *Error) Error() string {
	if e.Resolved != "" {
		return fmt.Sprintf("cannot scan %q: %s (resolved to %s)", e.Input, e.Detail, e.Resolved)
	}
	return fmt.Sprintf("cannot scan %q: %s", e.Input, e.Detail)
}

// Directory resolves raw into an absolute, existing directory path.
// Empty input means the current working directory. Aliases from config
// take precedence over the built-in downloads shorthands. Tilde and
// $VAR references are expanded before validation.
func Directory(raw string, aliases map[string]string) (string, error) {
	path := strings.Trim(strings.TrimSpace(raw), `"'`)

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", &Error{Input: raw, Detail: "cannot determine working directory"}
		}
		path = cwd
	}

	if target, ok := aliases[strings.ToLower(path)]; ok {
		path = target
	} else if _, ok := downloadAliases[strings.ToLower(path)]; ok {
		path = downloadsDir()
	}

	home, _ := os.UserHomeDir()
	expanded := os.ExpandEnv(expandHome(path, home))

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &Error{Input: raw, Detail: fmt.Sprintf("invalid path: %v", err)}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", &Error{Input: raw, Resolved: abs, Detail: "path does not exist"}
	}
	if !info.IsDir() {
		return "", &Error{Input: raw, Resolved: abs, Detail: "not a directory"}
	}

	return abs, nil
}

// downloadsDir picks the first existing downloads folder under the
// user's home, falling back to the conventional spelling so the caller
// still gets a descriptive missing-path error.
func downloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}

	for _, name := range []string{"Downloads", "downloads"} {
		candidate := filepath.Join(home, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return filepath.Join(home, "Downloads")
}

// expandHome expands a leading tilde against home. Tildes anywhere
// else in the path are left alone.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
