package outputmap

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"swiftwrap/internal/core/domain"
)

// rewrite validates every output record in doc and redirects the
// configured artifact kinds into the storage area, recording each
// original -> relocated pair in outputs.
//
// The empty input key holds module-wide outputs; its record is validated
// but never modified.
func (m *Map) rewrite(doc map[string]any, outputs *domain.IncrementalOutputs) error {
	for src, value := range doc {
		record, ok := value.(map[string]any)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrMalformedMap, "output record is not a mapping"), "source", src)
		}
		if src == "" {
			continue
		}

		for kind, entry := range record {
			if _, redirect := m.kinds[kind]; !redirect {
				continue
			}

			original, ok := entry.(string)
			if !ok {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedMap, "output path is not a string"),
					"source", src), "kind", kind)
			}

			relocated := m.relocate(original)
			if err := outputs.Add(original, relocated); err != nil {
				return err
			}
			record[kind] = relocated
		}
	}
	return nil
}

// relocate derives the storage-area path for an original artifact path.
//
// The name is a pure function of the cleaned original path: a 64-bit hash
// of the whole path keeps same-named files from distinct directories
// apart, and the original basename keeps the extension the compiler keys
// on. Nothing build-specific enters the name, so repeated builds of the
// same source land on the same slot and naturally find their prior state.
func (m *Map) relocate(original string) string {
	clean := filepath.Clean(original)
	sum := xxhash.Sum64String(clean)
	return filepath.Join(m.storageRoot, fmt.Sprintf("%016x-%s", sum, filepath.Base(clean)))
}
