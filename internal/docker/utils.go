package docker

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/distribution/reference"
	"github.com/pkg/errors"
)

// ---- FS helpers ----

func absOr(p, fallback string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return fallback
}

// resolveContext joins root and target. The directory must exist unless
// dry is set.
func resolveContext(root, target string, dry bool) (string, error) {
	dir := filepath.Join(absOr(root, root), target)
	if dry {
		return dir, nil
	}
	st, err := os.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, "build context %q not found", dir)
	}
	if !st.IsDir() {
		return "", errors.Errorf("build context %q is not a directory", dir)
	}
	return dir, nil
}

// ---- Ref / tag validation ----

var tagAllowed = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]{0,127}$`)

func validateTag(tag string) bool {
	return tagAllowed.MatchString(tag)
}

func validateRef(ref string) error {
	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return errors.Wrapf(err, "invalid image reference %q", ref)
	}
	return nil
}
