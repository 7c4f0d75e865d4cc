package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// IncrementalOutputs maps an artifact's originally declared output path to
// the path it was redirected to inside the incremental storage area.
//
// Iteration is sorted by original path so that anything derived from the
// table (directory preparation, copy-back plans, logs) is reproducible
// across runs.
type IncrementalOutputs struct {
	relocated map[string]string // original -> relocated
	originals map[string]string // relocated -> original, guards aliasing
}

// NewIncrementalOutputs creates an empty table.
func NewIncrementalOutputs() *IncrementalOutputs {
	return &IncrementalOutputs{
		relocated: make(map[string]string),
		originals: make(map[string]string),
	}
}

// Add records that original was redirected to relocated.
//
// Adding the same pair twice is a no-op (the same original path may appear
// under more than one artifact kind). Two distinct originals must never
// alias the same storage-area slot; that case returns ErrRelocationConflict.
func (o *IncrementalOutputs) Add(original, relocated string) error {
	if prev, ok := o.relocated[original]; ok {
		if prev == relocated {
			return nil
		}
		return zerr.With(zerr.With(zerr.Wrap(ErrRelocationConflict, "original path already redirected elsewhere"),
			"original", original), "relocated", prev)
	}
	if prev, ok := o.originals[relocated]; ok && prev != original {
		return zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrRelocationConflict, "two originals derive the same relocated path"),
			"original", original), "conflicting_original", prev), "relocated", relocated)
	}
	o.relocated[original] = relocated
	o.originals[relocated] = original
	return nil
}

// Lookup returns the relocated path for an original path.
func (o *IncrementalOutputs) Lookup(original string) (string, bool) {
	relocated, ok := o.relocated[original]
	return relocated, ok
}

// Len returns the number of redirected artifacts.
func (o *IncrementalOutputs) Len() int {
	return len(o.relocated)
}

// All iterates over (original, relocated) pairs in ascending order of the
// original path.
func (o *IncrementalOutputs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		keys := make([]string, 0, len(o.relocated))
		for k := range o.relocated {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k, o.relocated[k]) {
				return
			}
		}
	}
}
