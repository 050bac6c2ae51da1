// internal/docker/types.go
package docker

// BuildRequest is what the user asked for. Built once, never mutated.
type BuildRequest struct {
	Target    string // build-context subdirectory, also the image name
	Username  string // registry namespace
	Tag       string // default: DefaultTag(now)
	Latest    bool   // also tag and push :latest
	BaseImage string // optional, passed as DOCKER_FROM
	Token     string // optional, passed as HF_TOKEN; masked in logs

	Pull    bool // docker build --pull
	NoCache bool // docker build --no-cache
}

// Config holds orchestrator settings that are not part of a request.
type Config struct {
	Tool   string // default: "docker"
	Root   string // directory holding the build contexts
	DryRun bool   // skip the context check; runner decides execution
}

// Result lists the references that were pushed.
type Result struct {
	Image  string
	Latest string // empty unless BuildRequest.Latest
}
