// Package fs reconciles the incremental storage area with the output
// locations the build system declared.
package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"swiftwrap/internal/core/domain"
	"swiftwrap/internal/core/ports"
)

// Reconciler prepares storage-area directories before a compile and copies
// relocated artifacts back to their declared locations afterwards.
type Reconciler struct {
	logger ports.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(logger ports.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// PrepareStorageDirs creates the parent directory of every relocated path.
// The build system creates directories for the outputs it declared; the
// storage area is ours to prepare.
func (r *Reconciler) PrepareStorageDirs(outputs *domain.IncrementalOutputs) error {
	for _, relocated := range outputs.All() {
		dir := filepath.Dir(relocated)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create storage directory"), "dir", dir)
		}
	}
	return nil
}

// CollectOutputs copies every relocated artifact back to the location the
// build system expects it at. Each failed copy is logged and the failures
// are reported together so one bad artifact does not hide the rest.
func (r *Reconciler) CollectOutputs(outputs *domain.IncrementalOutputs) error {
	var errs []error
	for original, relocated := range outputs.All() {
		if err := copyFile(relocated, original); err != nil {
			r.logger.Error(err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Paths come from the relocation table
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open relocated artifact"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat relocated artifact"), "path", src)
	}

	//nolint:gosec // Destination was declared by the build system
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open declared output"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy artifact"), "from", src), "to", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close declared output"), "path", dst)
	}
	return nil
}
