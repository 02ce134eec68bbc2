package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a driver uses to run and observe an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Generation() int
	Alive(x, y int) bool
}

// ParameterSource is implemented by sims that can describe their settings.
type ParameterSource interface {
	Parameters() ParameterSnapshot
}

// PopulationCounter is implemented by sims that track their live cell count.
type PopulationCounter interface {
	Population() int
}

// Factory constructs a Sim from flag-style key/value settings.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
