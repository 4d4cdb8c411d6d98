// registry.go - Backend-Registry fuer konkrete Modell-Saetze
// Backends registrieren sich ueber Register (typisch in init); der
// Orchestrator haengt nur an den Interfaces, nie an der Konstruktion.
package model

import (
	"fmt"
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]func() (Models, error))
)

// Register makes a backend constructor available under name. It panics if
// the name is already taken.
func Register(name string, f func() (Models, error)) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if _, ok := backends[name]; ok {
		panic("model: backend already registered: " + name)
	}
	backends[name] = f
}

// New constructs the model set registered under name.
func New(name string) (Models, error) {
	backendsMu.RLock()
	f, ok := backends[name]
	backendsMu.RUnlock()

	if !ok {
		return Models{}, fmt.Errorf("model: unknown backend %q (registered: %v)", name, List())
	}

	m, err := f()
	if err != nil {
		return Models{}, err
	}
	if m.Tokenizer == nil || m.TextEncoder == nil || m.NoisePredictor == nil || m.ImageDecoder == nil {
		return Models{}, fmt.Errorf("model: backend %q returned an incomplete model set", name)
	}
	return m, nil
}

// List returns the names of all registered backends, sorted.
func List() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
