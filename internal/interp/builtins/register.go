package builtins

// DefaultRegistry is populated on package initialization with every
// standard Kavun built-in, mirroring the teacher's package-level
// DefaultRegistry / RegisterAll split.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry()
	RegisterAll(DefaultRegistry)
}

// RegisterAll wires every built-in category into r. Exposed separately
// from the package-level DefaultRegistry so tests can build an isolated
// registry.
func RegisterAll(r *Registry) {
	RegisterMathFunctions(r)
	RegisterTextFunctions(r)
	RegisterCollectionFunctions(r)
	RegisterDateTimeFunctions(r)
	RegisterFileFunctions(r)
	RegisterOutputFunctions(r)
}
