package outputmap

// Relocate exposes the path derivation to tests.
func (m *Map) Relocate(original string) string {
	return m.relocate(original)
}
