// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID           string
	Title        string
	Instructions string
	Order        engine.ScoreOrder
}

// Factory creates a fresh simulation. Factories are called lazily, so they
// may read configuration that is only set up after init.
type Factory func() engine.Simulation

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns every registered ID sorted alphabetically.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	ids := IDs()
	result := make([]GameInfo, 0, len(ids))
	for _, id := range ids {
		g, err := Create(id)
		if err != nil {
			continue
		}
		result = append(result, GameInfo{
			ID:           id,
			Title:        g.Title(),
			Instructions: g.Instructions(),
			Order:        g.Order(),
		})
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (engine.Simulation, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
