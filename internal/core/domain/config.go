package domain

// DefaultIncrementalKinds are the artifact kinds redirected into the
// incremental storage area when the configuration does not name its own
// set: the cross-build dependency graph and the partial module files.
//
// The "object" kind is deliberately absent so that the primary compiled
// artifact lands where the build system declared it.
func DefaultIncrementalKinds() []string {
	return []string{"swift-dependencies", "swiftmodule"}
}

// DefaultStorageRoot is where relocated artifacts are kept when the
// configuration does not name a storage area. Build systems that sandbox
// each invocation should point this at a stable absolute path instead.
const DefaultStorageRoot = ".swiftwrap/incremental"

// DefaultCompiler is the argv prefix used to invoke the compiler when the
// configuration does not override it.
var DefaultCompiler = []string{"swiftc"}

// Config holds the wrapper configuration.
type Config struct {
	// StorageRoot is the incremental storage area. Its lifecycle is owned
	// by the surrounding build setup; the wrapper only creates
	// subdirectories for the artifacts it relocates.
	StorageRoot string

	// IncrementalKinds is the set of artifact kinds whose paths are
	// redirected into the storage area.
	IncrementalKinds []string

	// Compiler is the argv prefix used to invoke the compiler.
	Compiler []string
}

// DefaultConfig returns the configuration used when no swiftwrap.yaml is
// present.
func DefaultConfig() *Config {
	return &Config{
		StorageRoot:      DefaultStorageRoot,
		IncrementalKinds: DefaultIncrementalKinds(),
		Compiler:         DefaultCompiler,
	}
}
