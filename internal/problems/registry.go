package problems

import (
	"fmt"
	"sort"
)

var registry = map[string]func() Problem{
	"reference":   NewReference,
	"harmonic":    NewHarmonic,
	"exponential": NewExponential,
	"damped":      NewDamped,
	"vanderpol":   NewVanDerPol,
}

// Get returns the named problem.
func Get(name string) (Problem, error) {
	fn, ok := registry[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

// Names returns all registered problem names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
