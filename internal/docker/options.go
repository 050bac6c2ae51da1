// internal/docker/options.go
//
// Defaults and derived values for a BuildRequest: the namespace fallback,
// the date tag, and the image references computed from the request.

package docker

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultUsername is the registry namespace used when none is given.
	DefaultUsername = "chris01b"

	// DefaultTool is the container tool looked up on PATH.
	DefaultTool = "docker"

	// LatestTag is the floating tag applied with --latest.
	LatestTag = "latest"

	// Build args understood by the Dockerfiles.
	BaseImageBuildArg = "DOCKER_FROM"
	TokenBuildArg     = "HF_TOKEN"

	dateTagLayout = "02012006"
)

// DefaultTag formats t as DDMMYYYY.
func DefaultTag(t time.Time) string {
	return t.Format(dateTagLayout)
}

// ImageRef returns "{user}/{name}:{tag}".
func ImageRef(user, name, tag string) string {
	return fmt.Sprintf("%s/%s:%s", user, name, tag)
}

// Image is the primary reference for the request.
func (r BuildRequest) Image() string {
	return ImageRef(r.Username, r.Target, r.Tag)
}

// LatestImage is the :latest reference, empty unless Latest is set.
func (r BuildRequest) LatestImage() string {
	if !r.Latest {
		return ""
	}
	return ImageRef(r.Username, r.Target, LatestTag)
}

// Validate checks the request before any command is issued.
func (r BuildRequest) Validate() error {
	if strings.TrimSpace(r.Target) == "" {
		return errors.New("target is empty")
	}
	if !filepath.IsLocal(r.Target) {
		return errors.Errorf("target %q must be a directory inside the build root", r.Target)
	}
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is empty")
	}
	if strings.TrimSpace(r.Tag) == "" {
		return errors.New("tag is empty")
	}
	if !validateTag(r.Tag) {
		return errors.Errorf("tag %q is invalid", r.Tag)
	}
	if err := validateRef(r.Image()); err != nil {
		return err
	}
	return nil
}

func (c Config) tool() string {
	if t := strings.TrimSpace(c.Tool); t != "" {
		return t
	}
	return DefaultTool
}
