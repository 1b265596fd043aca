package rules

// Registry maps a data-shape identifier to its rule descriptor. It is
// populated at startup by the same mechanism that registers shapes with the
// document builder and is read-only afterwards, so no locking is needed.
type Registry struct {
	descriptors map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descriptors: map[string]Descriptor{}}
}

// Register binds a descriptor to a shape identifier, replacing any previous
// binding.
func (r *Registry) Register(shape string, desc Descriptor) {
	r.descriptors[shape] = desc
}

// Lookup returns the descriptor for a shape identifier.
func (r *Registry) Lookup(shape string) (Descriptor, bool) {
	desc, ok := r.descriptors[shape]
	return desc, ok
}
