package roster

//go:generate mockgen -destination=mock/mock.go -package=mockroster -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/creature-arena/internal/creatures"
)

// Repository holds the creatures taking part in a battle
type Repository interface {
	// Add stores a combatant. IDs and names must be unique.
	Add(ctx context.Context, combatant creatures.Combatant) error

	// Get retrieves a combatant by ID
	Get(ctx context.Context, id string) (creatures.Combatant, error)

	// GetByName retrieves a combatant by name, ignoring case
	GetByName(ctx context.Context, name string) (creatures.Combatant, error)

	// List returns all combatants in the order they were added
	List(ctx context.Context) ([]creatures.Combatant, error)

	// Remove deletes a combatant
	Remove(ctx context.Context, id string) error
}
