package hostfuncs

// Bundle is a pre-configured set of related host functions. Bundles allow
// registering multiple functions at once for common use cases.
type Bundle interface {
	// Funcs returns the functions carried by the bundle.
	Funcs() []Func
}

// staticBundle implements Bundle with a fixed set of functions.
type staticBundle struct {
	funcs []Func
}

func (b *staticBundle) Funcs() []Func {
	return b.funcs
}

// WithBundle registers all functions from a bundle.
func WithBundle(bundle Bundle) RegistryOption {
	return func(b *registryBuilder) {
		for _, fn := range bundle.Funcs() {
			if err := b.addFunc(fn); err != nil {
				b.errors = append(b.errors, err)
			}
		}
	}
}
