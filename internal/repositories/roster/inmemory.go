package roster

import (
	"context"
	"strings"

	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
)

// InMemoryRepository keeps combatants for the life of the process. It hands
// out the stored combatants themselves, so callers mutate roster state
// directly. Not safe for concurrent use.
type InMemoryRepository struct {
	order  []string
	byID   map[string]creatures.Combatant
	byName map[string]string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		byID:   make(map[string]creatures.Combatant),
		byName: make(map[string]string),
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add stores a new combatant
func (r *InMemoryRepository) Add(ctx context.Context, combatant creatures.Combatant) error {
	if combatant == nil {
		return dnderr.InvalidArgument("combatant cannot be nil")
	}

	id := combatant.ID()
	if id == "" {
		return dnderr.InvalidArgument("combatant ID is required")
	}

	if _, exists := r.byID[id]; exists {
		return dnderr.AlreadyExistsf("combatant with ID '%s' already exists", id).
			WithMeta("combatant_id", id)
	}

	key := nameKey(combatant.Name())
	if _, exists := r.byName[key]; exists {
		return dnderr.AlreadyExistsf("combatant named '%s' already exists", combatant.Name()).
			WithMeta("name", combatant.Name())
	}

	r.byID[id] = combatant
	r.byName[key] = id
	r.order = append(r.order, id)

	return nil
}

// Get retrieves a combatant by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (creatures.Combatant, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("combatant ID is required")
	}

	combatant, exists := r.byID[id]
	if !exists {
		return nil, dnderr.NotFoundf("combatant with ID '%s' not found", id).
			WithMeta("combatant_id", id)
	}

	return combatant, nil
}

// GetByName retrieves a combatant by name
func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (creatures.Combatant, error) {
	key := nameKey(name)
	if key == "" {
		return nil, dnderr.InvalidArgument("combatant name is required")
	}

	id, exists := r.byName[key]
	if !exists {
		return nil, dnderr.NotFoundf("combatant named '%s' not found", name).
			WithMeta("name", name)
	}

	return r.byID[id], nil
}

// List returns combatants in insertion order
func (r *InMemoryRepository) List(ctx context.Context) ([]creatures.Combatant, error) {
	result := make([]creatures.Combatant, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

// Remove deletes a combatant
func (r *InMemoryRepository) Remove(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("combatant ID is required")
	}

	combatant, exists := r.byID[id]
	if !exists {
		return dnderr.NotFoundf("combatant with ID '%s' not found", id).
			WithMeta("combatant_id", id)
	}

	delete(r.byID, id)
	delete(r.byName, nameKey(combatant.Name()))
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
