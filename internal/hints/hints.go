// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docxgen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForPermission returns hints for a document that could not be written.
// An existing target is often locked by a word processor; in a container the
// output directory is usually a read-only mount.
func ForPermission(path string) string {
	var hints []string

	if fileutil.FileExists(path) {
		hints = append(hints, "close "+filepath.Base(path)+" if it is open in a word processor")
	}
	hints = append(hints, "check that "+dirOf(path)+" is writable")
	if IsInContainer() {
		hints = append(hints, "mount the output directory as a writable volume")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating the config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(os.PathSeparator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"go-docxgen"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForChoice returns hints listing the accepted values of a setting, such as
// table or code styles.
func ForChoice(setting string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format(setting + " must be one of: " + strings.Join(available, ", "))
}

// ForDate returns hints for invalid date values.
func ForDate() string {
	return format(`use a literal, "auto" or "auto:FORMAT" (presets: iso, european, us, long, pt-long)`)
}

// ForEmptyMarkdown returns hints for empty input files.
func ForEmptyMarkdown(path string) string {
	return format(filepath.Base(path) + " has no content; add a heading or paragraph")
}

func dirOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "." {
		return "the current directory"
	}
	return dir
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
