// Package outputmap loads, rewrites, and persists a compiler output file
// map so that artifacts carrying incremental-compilation state survive
// outside the build sandbox.
//
// See https://github.com/apple/swift/blob/main/docs/Driver.md#output-file-maps
// for how the Swift driver consumes this file.
package outputmap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"swiftwrap/internal/core/domain"
)

// Map owns the in-memory representation of one output file map document
// and the relocation table derived from it. One Map is scoped to one
// compilation request and is not safe for concurrent use.
//
// The document is kept as a generic JSON tree rather than typed structs so
// that input keys and artifact kinds this package does not recognize pass
// through byte-identical on round-trip.
type Map struct {
	storageRoot string
	kinds       map[string]struct{}

	doc     map[string]any
	outputs *domain.IncrementalOutputs
}

// New creates an empty map that redirects the given artifact kinds into
// storageRoot.
func New(storageRoot string, kinds []string) *Map {
	set := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return &Map{
		storageRoot: storageRoot,
		kinds:       set,
		doc:         make(map[string]any),
		outputs:     domain.NewIncrementalOutputs(),
	}
}

// ReadFromPath reads the output file map from the JSON file at the given
// path and rewrites it in place to support incremental builds.
//
// On any failure the map keeps the document and relocation table it held
// before the call.
func (m *Map) ReadFromPath(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the build system
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read output file map"), "path", path)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedMap, "invalid JSON"), "path", path), "cause", err.Error())
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrMalformedMap, "top level is not a mapping"), "path", path)
	}

	outputs := domain.NewIncrementalOutputs()
	if err := m.rewrite(doc, outputs); err != nil {
		return err
	}

	m.doc = doc
	m.outputs = outputs
	return nil
}

// WriteToPath serializes the current document and publishes it at the
// given path. The write goes through a temporary file in the destination
// directory and a rename, so a failure never leaves a partial document
// visible.
//
// An unread map serializes as an empty document.
func (m *Map) WriteToPath(path string) error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal output file map")
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary output file map"), "path", path)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to write output file map"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to close output file map"), "path", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to publish output file map"), "path", path)
	}
	return nil
}

// Document returns the current document tree. Callers must treat it as
// read-only.
func (m *Map) Document() map[string]any {
	return m.doc
}

// IncrementalOutputs returns the relocation table built by the last
// successful ReadFromPath. Callers must treat it as read-only.
func (m *Map) IncrementalOutputs() *domain.IncrementalOutputs {
	return m.outputs
}
