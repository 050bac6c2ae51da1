// Package cli wires the imgbuild command line to the build orchestrator.
//
//	imgbuild [flags] target
//
//	    --username   registry namespace (default $IMGBUILD_USERNAME or chris01b)
//	    --tag        image tag (default today's date, DDMMYYYY)
//	    --latest     also tag and push :latest
//	    --hf-token   HF_TOKEN build arg, masked in logs (default $IMGBUILD_HF_TOKEN)
//	    --from       DOCKER_FROM build arg
//	    --tool       container tool (default $IMGBUILD_TOOL or docker)
//	    --root       directory holding build contexts (default $IMGBUILD_ROOT
//	                 or the executable's directory)
//	    --dry-run    log commands only (default $IMGBUILD_DRY_RUN)
//	    --pull, --no-cache, -v/--verbose, --version
//
// Bad arguments print usage. Any failure is logged at error level and makes
// Execute return an error; main turns that into exit status 1.
package cli
