package core

import (
	"fmt"
	"strings"
	"sync"
)

var (
	registry   = make(map[string]TableDefinition)
	order      []string // registration order of lower-cased keys
	registryMu sync.RWMutex
)

// Register adds a table definition to the registry.
// Panics if a table with the same key is already registered.
func Register(def TableDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	key := strings.ToLower(def.Info.Key)
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("table already registered: %s", def.Info.Key))
	}

	if def.Info.Label == "" {
		def.Info.Label = def.Info.Key
	}

	registry[key] = def
	order = append(order, key)
}

// Get returns a table definition by key (case-insensitive).
// Returns false if not found.
func Get(key string) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[strings.ToLower(key)]
	return def, ok
}

// All returns all registered table definitions in registration order.
func All() []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TableDefinition, 0, len(order))
	for _, key := range order {
		result = append(result, registry[key])
	}
	return result
}

// LoadOrder returns all definitions ordered so that every table comes after
// the tables it references. Ties keep registration order.
func LoadOrder() ([]TableDefinition, error) {
	defs := All()

	index := make(map[string]int, len(defs))
	for i, def := range defs {
		index[strings.ToLower(def.Info.Key)] = i
	}

	for _, def := range defs {
		for _, dep := range def.Dependencies() {
			if _, ok := index[strings.ToLower(dep)]; !ok {
				return nil, fmt.Errorf("unknown table %q referenced by %s", dep, def.Info.Key)
			}
		}
	}

	// Each pass places the first ready table in registration order.
	placed := make([]bool, len(defs))
	result := make([]TableDefinition, 0, len(defs))
	for len(result) < len(defs) {
		progressed := false
		for i, def := range defs {
			if placed[i] || !depsPlaced(def, index, placed) {
				continue
			}
			placed[i] = true
			result = append(result, def)
			progressed = true
			break
		}
		if !progressed {
			var stuck []string
			for i, def := range defs {
				if !placed[i] {
					stuck = append(stuck, def.Info.Key)
				}
			}
			return nil, fmt.Errorf("foreign key cycle among tables: %s", strings.Join(stuck, ", "))
		}
	}
	return result, nil
}

func depsPlaced(def TableDefinition, index map[string]int, placed []bool) bool {
	for _, dep := range def.Dependencies() {
		j := index[strings.ToLower(dep)]
		if !placed[j] && !strings.EqualFold(dep, def.Info.Key) {
			return false
		}
	}
	return true
}

// TableCount returns the number of registered tables.
func TableCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered tables.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]TableDefinition)
	order = nil
}
