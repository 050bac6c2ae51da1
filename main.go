// imgbuild main entrypoint
//
// Builds <root>/<target> with the container tool, pushes
// <username>/<target>:<tag>, and with --latest also tags and pushes :latest.
//
// Keep this file simple: load local env overrides, run the command, turn
// failure into a non-zero exit. Everything else lives in internal/.

package main

import (
	"os"

	"github.com/joho/godotenv"

	"imgbuild/internal/cli"
)

func main() {
	// Local overrides (IMGBUILD_*); real env vars win.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
