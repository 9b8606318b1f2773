package warehouse

// factory implements the factory pattern for warehouse worlds and
// components, mirroring the package-level Factory convention used
// throughout this module.
type factory struct{}

// Factory is the global factory instance for constructing Worlds.
var Factory factory

// NewWorld creates a new World from cfg.
func (f factory) NewWorld(cfg Config) (*World, error) {
	return NewWorld(cfg)
}

// FactoryNewComponent derives a Component[T] named name, identical to
// calling NewComponent[T](name) directly. It exists for call sites
// that prefer the Factory.* / FactoryNew* naming convention.
func FactoryNewComponent[T any](name string) (Component[T], error) {
	return NewComponent[T](name)
}
