package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
)

// Server runs the persistent worker loop: newline-delimited JSON work
// requests on in, one JSON response per request on out.
//
// Requests are processed concurrently; responses are serialized through a
// mutex so frames never interleave.
type Server struct {
	processor *Processor
	logger    ports.Logger
	in        io.Reader
	out       io.Writer
}

// NewServer creates a worker server reading requests from in and writing
// responses to out.
func NewServer(processor *Processor, logger ports.Logger, in io.Reader, out io.Writer) *Server {
	return &Server{
		processor: processor,
		logger:    logger,
		in:        in,
		out:       out,
	}
}

// Serve processes requests until in reaches EOF or the context is
// canceled. A malformed frame is fatal: past it the stream offset is
// unrecoverable.
//
// universalArgs were given on the worker's own command line by the build
// system and are prepended to every request's arguments.
func (s *Server) Serve(ctx context.Context, universalArgs []string) error {
	dec := json.NewDecoder(s.in)
	enc := json.NewEncoder(s.out)

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for ctx.Err() == nil {
		var req domain.WorkRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			_ = g.Wait()
			return zerr.Wrap(err, "failed to decode work request")
		}

		if len(universalArgs) > 0 {
			req.Arguments = append(slices.Clone(universalArgs), req.Arguments...)
		}

		g.Go(func() error {
			resp := s.processor.Process(ctx, req)
			if resp.ExitCode != 0 {
				s.logger.Warn(fmt.Sprintf("request %d finished with exit code %d", req.RequestID, resp.ExitCode))
			}

			mu.Lock()
			defer mu.Unlock()
			if err := enc.Encode(resp); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to encode work response"), "request_id", req.RequestID)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
