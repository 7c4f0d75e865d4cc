package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedMap is returned when an output file map document does not
	// have the expected shape (a top-level mapping of source paths to output
	// records, each record a mapping of artifact kinds to paths).
	ErrMalformedMap = zerr.New("malformed output file map")

	// ErrRelocationConflict is returned when two distinct original artifact
	// paths derive the same relocated path in the incremental storage area.
	ErrRelocationConflict = zerr.New("relocated path conflict")

	// ErrNoArguments is returned when a work request carries no compiler
	// arguments.
	ErrNoArguments = zerr.New("work request has no arguments")

	// ErrCompileFailed signals that the wrapped compiler exited nonzero;
	// its diagnostics were already written out.
	ErrCompileFailed = zerr.New("compilation failed")
)
