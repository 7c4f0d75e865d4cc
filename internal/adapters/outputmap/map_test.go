package outputmap_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftwrap/internal/adapters/outputmap"
	"swiftwrap/internal/core/domain"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.output-file-map.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newMap(t *testing.T) (*outputmap.Map, string) {
	t.Helper()
	storageRoot := t.TempDir()
	return outputmap.New(storageRoot, domain.DefaultIncrementalKinds()), storageRoot
}

func TestReadFromPath_Scenario(t *testing.T) {
	m, storageRoot := newMap(t)
	path := writeMap(t, `{"a.swift": {"object": "/tmp/a.o", "swift-dependencies": "/tmp/a.swiftdeps"}}`)

	require.NoError(t, m.ReadFromPath(path))

	record, ok := m.Document()["a.swift"].(map[string]any)
	require.True(t, ok, "record for a.swift must be a mapping")

	assert.Equal(t, "/tmp/a.o", record["object"], "object output must stay untouched")

	relocated, ok := record["swift-dependencies"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(relocated, storageRoot+string(filepath.Separator)),
		"swift-dependencies must be redirected under the storage root, got %q", relocated)
	assert.Equal(t, ".swiftdeps", filepath.Ext(relocated))

	table := m.IncrementalOutputs()
	require.Equal(t, 1, table.Len())
	got, ok := table.Lookup("/tmp/a.swiftdeps")
	require.True(t, ok)
	assert.Equal(t, relocated, got)
}

func TestReadFromPath_Determinism(t *testing.T) {
	storageRoot := t.TempDir()
	content := `{
		"a.swift": {"object": "/tmp/a.o", "swift-dependencies": "/tmp/a.swiftdeps"},
		"b.swift": {"object": "/tmp/b.o", "swift-dependencies": "/tmp/b.swiftdeps", "swiftmodule": "/tmp/b~partial.swiftmodule"}
	}`
	path1 := writeMap(t, content)
	path2 := writeMap(t, content)

	m1 := outputmap.New(storageRoot, domain.DefaultIncrementalKinds())
	m2 := outputmap.New(storageRoot, domain.DefaultIncrementalKinds())
	require.NoError(t, m1.ReadFromPath(path1))
	require.NoError(t, m2.ReadFromPath(path2))

	require.Equal(t, m1.IncrementalOutputs().Len(), m2.IncrementalOutputs().Len())
	for original, relocated := range m1.IncrementalOutputs().All() {
		got, ok := m2.IncrementalOutputs().Lookup(original)
		require.True(t, ok, "missing entry for %q in second table", original)
		assert.Equal(t, relocated, got, "relocated path for %q differs between instances", original)
	}
}

func TestReadFromPath_InjectiveForSameBasename(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{
		"one/a.swift": {"swift-dependencies": "/out/one/a.swiftdeps"},
		"two/a.swift": {"swift-dependencies": "/out/two/a.swiftdeps"}
	}`)

	require.NoError(t, m.ReadFromPath(path))

	table := m.IncrementalOutputs()
	require.Equal(t, 2, table.Len())
	one, _ := table.Lookup("/out/one/a.swiftdeps")
	two, _ := table.Lookup("/out/two/a.swiftdeps")
	assert.NotEqual(t, one, two, "same-named artifacts in distinct directories must not collide")
}

func TestReadFromPath_Coverage(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{
		"a.swift": {"object": "/tmp/a.o", "swift-dependencies": "/tmp/a.swiftdeps"},
		"b.swift": {"object": "/tmp/b.o", "swiftmodule": "/tmp/b~partial.swiftmodule", "diagnostics": "/tmp/b.dia"},
		"c.swift": {"object": "/tmp/c.o"}
	}`)

	require.NoError(t, m.ReadFromPath(path))

	want := map[string]bool{
		"/tmp/a.swiftdeps":           true,
		"/tmp/b~partial.swiftmodule": true,
	}
	got := make(map[string]bool)
	for original := range m.IncrementalOutputs().All() {
		got[original] = true
	}
	assert.Equal(t, want, got, "table must hold exactly the redirected originals")
}

func TestReadFromPath_GlobalKeyUntouched(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{
		"": {"swift-dependencies": "/tmp/module.swiftdeps", "emit-module-dependencies": "/tmp/module.d"},
		"a.swift": {"swift-dependencies": "/tmp/a.swiftdeps"}
	}`)

	require.NoError(t, m.ReadFromPath(path))

	global, ok := m.Document()[""].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/tmp/module.swiftdeps", global["swift-dependencies"],
		"module-wide outputs must never be redirected")

	_, found := m.IncrementalOutputs().Lookup("/tmp/module.swiftdeps")
	assert.False(t, found, "global outputs must not enter the relocation table")
}

func TestReadFromPath_UnknownKindsPassThrough(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{
		"a.swift": {
			"object": "/tmp/a.o",
			"llvm-bc": "/tmp/a.bc",
			"index-unit-output-path": "/idx/a.o",
			"priority": 3
		}
	}`)

	require.NoError(t, m.ReadFromPath(path))

	record := m.Document()["a.swift"].(map[string]any)
	assert.Equal(t, "/tmp/a.bc", record["llvm-bc"])
	assert.Equal(t, "/idx/a.o", record["index-unit-output-path"])
	assert.Equal(t, json.Number("3"), record["priority"])
	assert.Equal(t, 0, m.IncrementalOutputs().Len())
}

func TestReadFromPath_RecordNotAMapping(t *testing.T) {
	m, _ := newMap(t)
	good := writeMap(t, `{"a.swift": {"swift-dependencies": "/tmp/a.swiftdeps"}}`)
	require.NoError(t, m.ReadFromPath(good))

	bad := writeMap(t, `{"b.swift": "not a record"}`)
	err := m.ReadFromPath(bad)
	require.ErrorIs(t, err, domain.ErrMalformedMap)

	// Prior state must survive the failed call.
	_, ok := m.Document()["a.swift"]
	assert.True(t, ok, "document must keep the previously loaded content")
	_, found := m.IncrementalOutputs().Lookup("/tmp/a.swiftdeps")
	assert.True(t, found, "relocation table must keep the previously built entries")
}

func TestReadFromPath_TopLevelNotAMapping(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `["a.swift"]`)
	require.ErrorIs(t, m.ReadFromPath(path), domain.ErrMalformedMap)
}

func TestReadFromPath_InvalidJSON(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{"a.swift": `)
	require.ErrorIs(t, m.ReadFromPath(path), domain.ErrMalformedMap)
}

func TestReadFromPath_NonStringOutputPath(t *testing.T) {
	m, _ := newMap(t)
	path := writeMap(t, `{"a.swift": {"swift-dependencies": 42}}`)
	require.ErrorIs(t, m.ReadFromPath(path), domain.ErrMalformedMap)
}

func TestReadFromPath_MissingFile(t *testing.T) {
	m, _ := newMap(t)
	err := m.ReadFromPath(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrMalformedMap), "an unreadable file is an I/O failure, not a parse failure")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteToPath_RoundTripUntouchedKinds(t *testing.T) {
	m, _ := newMap(t)
	inPath := writeMap(t, `{
		"a.swift": {"object": "/tmp/a.o", "swift-dependencies": "/tmp/a.swiftdeps", "diagnostics": "/tmp/a.dia"},
		"b.swift": {"object": "/tmp/b.o"}
	}`)
	require.NoError(t, m.ReadFromPath(inPath))

	outPath := filepath.Join(t.TempDir(), "rewritten.json")
	require.NoError(t, m.WriteToPath(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "/tmp/a.o", doc["a.swift"]["object"])
	assert.Equal(t, "/tmp/a.dia", doc["a.swift"]["diagnostics"])
	assert.Equal(t, "/tmp/b.o", doc["b.swift"]["object"])

	relocated, _ := m.IncrementalOutputs().Lookup("/tmp/a.swiftdeps")
	assert.Equal(t, relocated, doc["a.swift"]["swift-dependencies"])
}

func TestWriteToPath_NumberLiteralsPreserved(t *testing.T) {
	m, _ := newMap(t)
	inPath := writeMap(t, `{"a.swift": {"object": "/tmp/a.o", "priority": 3}}`)
	require.NoError(t, m.ReadFromPath(inPath))

	outPath := filepath.Join(t.TempDir(), "rewritten.json")
	require.NoError(t, m.WriteToPath(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"priority": 3`)
	assert.NotContains(t, string(data), "3.0")
}

func TestWriteToPath_EmptyInstance(t *testing.T) {
	m, _ := newMap(t)
	outPath := filepath.Join(t.TempDir(), "empty.json")

	require.NoError(t, m.WriteToPath(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestWriteToPath_ReplacesExistingContent(t *testing.T) {
	m, _ := newMap(t)
	inPath := writeMap(t, `{"a.swift": {"object": "/tmp/a.o"}}`)
	require.NoError(t, m.ReadFromPath(inPath))

	outPath := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(outPath, []byte(`{"stale": {"object": "/old"}}`), 0o600))

	require.NoError(t, m.WriteToPath(outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestWriteToPath_MissingDirectory(t *testing.T) {
	m, _ := newMap(t)
	err := m.WriteToPath(filepath.Join(t.TempDir(), "missing", "out.json"))
	require.Error(t, err)
}
