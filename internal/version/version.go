package version

import (
	"fmt"
	"runtime"
	"strings"
)

const undefined = "(undefined)"

// Set via -ldflags "-X imgbuild/internal/version.version=..." in release builds.
var (
	version   = ""
	gitCommit = ""
)

// Version returns the release version without a "v" prefix.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return undefined
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// GitCommit returns the commit hash the binary was built from.
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return undefined
	}
	return c
}

// IsLocal is true when the binary was built without linker flags.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" || strings.TrimSpace(gitCommit) == ""
}

// String is "<version> <commit> [<arch>]", or "(local)" for local builds.
func String() string {
	if IsLocal() {
		return "(local)"
	}
	return fmt.Sprintf("%s %s [%s]", Version(), GitCommit(), runtime.GOARCH)
}
