// Package worker implements the compile request processor and the
// persistent worker loop.
package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"swiftwrap/internal/adapters/fs"
	"swiftwrap/internal/adapters/outputmap"
	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
)

// Processor handles one compilation request at a time: it intercepts the
// output file map, redirects incremental state into the storage area, runs
// the compiler, and reconciles the storage area with the declared outputs.
type Processor struct {
	maps       *outputmap.Factory
	runner     ports.Runner
	reconciler *fs.Reconciler
	logger     ports.Logger
}

// NewProcessor creates a new Processor.
func NewProcessor(maps *outputmap.Factory, runner ports.Runner, reconciler *fs.Reconciler, logger ports.Logger) *Processor {
	return &Processor{
		maps:       maps,
		runner:     runner,
		reconciler: reconciler,
		logger:     logger,
	}
}

// argumentEnablesWMO reports whether the argument enables whole-module
// optimization, which rules out incremental compilation.
func argumentEnablesWMO(arg string) bool {
	return arg == "-wmo" || arg == "-whole-module-optimization" ||
		arg == "-force-single-frontend-invocation"
}

// peelOutputFileMap removes `-output-file-map <path>` from the arguments
// so the map can be rewritten and re-appended, and reports whether any
// argument forces whole-module optimization.
func peelOutputFileMap(args []string) (remaining []string, mapPath string, wmo bool) {
	remaining = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-output-file-map" && i+1 < len(args):
			mapPath = args[i+1]
			i++
		case argumentEnablesWMO(args[i]):
			wmo = true
			remaining = append(remaining, args[i])
		default:
			remaining = append(remaining, args[i])
		}
	}
	return remaining, mapPath, wmo
}

// incrementalMapPath derives the path the rewritten map is written to,
// next to the original so relative paths inside it stay valid.
func incrementalMapPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".incremental.json"
}

// Process handles one compilation request and always produces a response;
// failures surface as a nonzero exit code, never as a dead worker.
func (p *Processor) Process(ctx context.Context, req domain.WorkRequest) domain.WorkResponse {
	resp := domain.WorkResponse{RequestID: req.RequestID}

	if len(req.Arguments) == 0 {
		resp.ExitCode = 1
		resp.Output = domain.ErrNoArguments.Error()
		return resp
	}

	args, mapPath, wmo := peelOutputFileMap(req.Arguments)

	// WMO overrules incremental mode, so when it is forced we put the
	// original map back and stay out of the way.
	incremental := mapPath != "" && !wmo

	var ofm *outputmap.Map
	switch {
	case incremental:
		ofm = p.maps.NewMap()
		if err := ofm.ReadFromPath(mapPath); err != nil {
			return failure(resp, err)
		}

		rewritten := incrementalMapPath(mapPath)
		if err := ofm.WriteToPath(rewritten); err != nil {
			return failure(resp, err)
		}

		if err := p.reconciler.PrepareStorageDirs(ofm.IncrementalOutputs()); err != nil {
			return failure(resp, err)
		}

		args = append(args, "-output-file-map", rewritten, "-incremental")
	case mapPath != "":
		args = append(args, "-output-file-map", mapPath)
	}

	exitCode, output, err := p.runner.Run(ctx, args)
	if err != nil {
		resp.Output = output
		return failure(resp, err)
	}
	resp.ExitCode = int32(exitCode) //nolint:gosec // Exit codes fit in int32
	resp.Output = output

	if incremental {
		// The compiler wrote into the storage area; move the artifacts to
		// where the build system declared them. A failed copy fails the
		// request even when compilation succeeded.
		if err := p.reconciler.CollectOutputs(ofm.IncrementalOutputs()); err != nil {
			if resp.ExitCode == 0 {
				resp.ExitCode = 1
			}
			resp.Output += fmt.Sprintf("\n%v", err)
		}
	}

	return resp
}

func failure(resp domain.WorkResponse, err error) domain.WorkResponse {
	resp.ExitCode = 1
	if resp.Output != "" {
		resp.Output += "\n"
	}
	resp.Output += err.Error()
	return resp
}
