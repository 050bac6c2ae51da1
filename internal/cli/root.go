package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"imgbuild/internal/docker"
	"imgbuild/internal/executil"
	"imgbuild/internal/logging"
	"imgbuild/internal/runtime"
	"imgbuild/internal/version"
)

// Deps are the process-level collaborators of the command.
type Deps struct {
	Env   runtime.Context
	Now   func() time.Time
	Level zap.AtomicLevel
	Log   *zap.Logger

	// Runner overrides the runner picked from --dry-run.
	Runner executil.Runner

	// Stderr receives usage text on argument errors. Nil means os.Stderr.
	Stderr io.Writer
}

// usageError marks a bad invocation: wrong arg count or an unknown flag.
type usageError struct {
	error
}

func (e usageError) Unwrap() error {
	return e.error
}

type options struct {
	username  string
	tag       string
	latest    bool
	token     string
	baseImage string
	tool      string
	root      string
	dryRun    bool
	pull      bool
	noCache   bool
	verbose   bool
}

// Execute runs imgbuild with the process arguments and environment.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log := logging.New(level)
	defer func() { _ = log.Sync() }()

	return Run(ctx, Deps{
		Env:   runtime.LoadContext(),
		Now:   time.Now,
		Level: level,
		Log:   log,
	}, os.Args[1:])
}

// Run executes the root command with args and logs the outcome.
func Run(ctx context.Context, d Deps, args []string) error {
	cmd := NewRootCommand(d)
	cmd.SetArgs(args)
	if d.Stderr != nil {
		cmd.SetErr(d.Stderr)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%s", err, cmd.UsageString())
			if d.Log != nil {
				d.Log.Error("Invalid arguments", zap.Error(err))
			}
			return err
		}
		reportFailure(d.Log, err)
		return err
	}
	return nil
}

// NewRootCommand returns the imgbuild command.
func NewRootCommand(d Deps) *cobra.Command {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Level == (zap.AtomicLevel{}) {
		d.Level = zap.NewAtomicLevel()
	}
	defaultTag := docker.DefaultTag(d.Now())
	o := &options{}

	cmd := &cobra.Command{
		Use:   "imgbuild [flags] target",
		Short: "Builds a container image from a build-context directory and pushes it",
		Long: `Builds <root>/<target> with the container tool, pushes it as
<username>/<target>:<tag> and optionally tags and pushes :latest.`,
		Example: `  imgbuild comfyui-without-flux
  imgbuild comfyui-without-flux --hf-token $HF_TOKEN
  imgbuild comfyui-without-flux --latest
  imgbuild comfyui-without-flux --username your_docker_username`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			d.Level.SetLevel(logging.Level(o.verbose))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := docker.BuildRequest{
				Target:    cleanTarget(args[0]),
				Username:  o.username,
				Tag:       o.tag,
				Latest:    o.latest,
				BaseImage: o.baseImage,
				Token:     o.token,
				Pull:      o.pull,
				NoCache:   o.noCache,
			}
			// never a flag default: cobra would print it in --help
			if !cmd.Flags().Changed("hf-token") {
				req.Token = d.Env.Token
			}
			cfg := docker.Config{Tool: o.tool, Root: o.root, DryRun: o.dryRun}

			d.Log.Debug("Resolved configuration",
				zap.String("target", req.Target),
				zap.String("username", req.Username),
				zap.String("tag", req.Tag),
				zap.Bool("latest", req.Latest),
				zap.Bool("token", req.Token != ""),
				zap.String("tool", cfg.Tool),
				zap.String("root", cfg.Root),
				zap.Bool("dry_run", cfg.DryRun))

			_, err := docker.NewBuilder(cfg, runnerFor(d, o), d.Log).BuildAndPush(cmd.Context(), req)
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringVar(&o.username, "username", firstNonEmpty(d.Env.Username, docker.DefaultUsername), "Registry namespace the image is pushed under")
	f.StringVar(&o.tag, "tag", defaultTag, "Tag to use. Defaults to today's date: "+defaultTag)
	f.BoolVar(&o.latest, "latest", false, "If specified, also tag and push :latest")
	f.StringVar(&o.token, "hf-token", "", "HuggingFace token passed as the HF_TOKEN build arg (default $"+runtime.EnvToken+"; $HF_TOKEN is not read)")
	f.StringVar(&o.baseImage, "from", "", "Base image passed as the DOCKER_FROM build arg")
	f.StringVar(&o.tool, "tool", firstNonEmpty(d.Env.Tool, docker.DefaultTool), "Container tool executable")
	f.StringVar(&o.root, "root", d.Env.Root, "Directory containing the build-context directories")
	f.BoolVar(&o.dryRun, "dry-run", d.Env.DryRun, "Log the commands without running them")
	f.BoolVar(&o.pull, "pull", false, "Always attempt to pull newer base images")
	f.BoolVar(&o.noCache, "no-cache", false, "Do not use cache when building the image")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Turns on verbose logging")

	return cmd
}

func runnerFor(d Deps, o *options) executil.Runner {
	switch {
	case d.Runner != nil:
		return d.Runner
	case o.dryRun:
		return executil.DryRunner{Log: d.Log}
	default:
		return executil.ExecRunner{Dir: o.root}
	}
}

// cleanTarget drops trailing separators left by shell completion.
func cleanTarget(target string) string {
	if target == "" {
		return target
	}
	return filepath.Clean(target)
}

func reportFailure(log *zap.Logger, err error) {
	if log == nil {
		return
	}
	var stageErr *docker.StageError
	if errors.As(err, &stageErr) {
		log.Error("Process aborted due to error running docker commands",
			zap.String("stage", string(stageErr.Stage)),
			zap.Error(err))
		return
	}
	log.Error("Unexpected failure", zap.Error(err))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
