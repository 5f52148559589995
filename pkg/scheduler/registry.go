package scheduler

import (
	"sync"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Registry maps constraint names to evaluator instances. The bin-packing
// engine resolves the constraints applicable to a candidate by name at
// evaluation time, so lookups must be safe under the engine's concurrency.
type Registry struct {
	constraints map[string]Constraint
	mu          sync.RWMutex
}

func NewRegistry(constraints ...Constraint) (*Registry, error) {
	r := &Registry{
		constraints: make(map[string]Constraint, len(constraints)),
	}
	for _, constraint := range constraints {
		if err := r.Register(constraint); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a constraint under its own name.
func (r *Registry) Register(constraint Constraint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := constraint.Name()
	if _, ok := r.constraints[name]; ok {
		return NewErrConstraintAlreadyRegistered(name)
	}
	r.constraints[name] = constraint
	return nil
}

// Get returns the constraint registered under the given name.
func (r *Registry) Get(name string) (Constraint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	constraint, ok := r.constraints[name]
	if !ok {
		return nil, NewErrConstraintNotFound(name)
	}
	return constraint, nil
}

// Has returns true if a constraint is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constraints[name]
	return ok
}

// Keys returns the registered constraint names in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := lo.Keys(r.constraints)
	slices.Sort(keys)
	return keys
}
