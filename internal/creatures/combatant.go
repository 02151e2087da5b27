package creatures

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
)

// Kind names a creature specialization
type Kind string

const (
	KindCreature Kind = "creature"
	KindDragon   Kind = "dragon"
	KindElf      Kind = "elf"
	KindOrc      Kind = "orc"
)

// ParseKind maps a case-insensitive name to a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCreature, KindDragon, KindElf, KindOrc:
		return k, nil
	default:
		return "", dnderr.InvalidArgumentf("unknown creature kind %q", s)
	}
}

// Title is the display form of the kind, e.g. "Dragon"
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Combatant is the capability set every creature exposes. Attacks accept any
// Combatant as their target.
type Combatant interface {
	ID() string
	Name() string
	Kind() Kind
	DateOfBirth() calendar.Date
	Health() int
	AgeYears() int
	IsAlive() bool
	TakeDamage(amount int) error
	Heal(amount int) error
	Details() string
}

// Emitter publishes creature events. *events.Bus satisfies it.
type Emitter interface {
	Emit(event events.Event) error
}

// WriteDetails renders c's details to w
func WriteDetails(w io.Writer, c Combatant) error {
	if c == nil {
		return dnderr.InvalidArgument("combatant is required")
	}
	_, err := fmt.Fprintln(w, c.Details())
	return err
}

func participant(c Combatant) *events.Participant {
	return &events.Participant{ID: c.ID(), Name: c.Name()}
}

// validateTarget rejects nil targets, including typed nil pointers
func validateTarget(target Combatant) error {
	switch t := target.(type) {
	case nil:
		return dnderr.InvalidArgument("target is required")
	case *Creature:
		if t == nil {
			return dnderr.InvalidArgument("target is required")
		}
	case *Dragon:
		if t == nil {
			return dnderr.InvalidArgument("target is required")
		}
	case *Elf:
		if t == nil {
			return dnderr.InvalidArgument("target is required")
		}
	case *Orc:
		if t == nil {
			return dnderr.InvalidArgument("target is required")
		}
	}
	return nil
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}

func validateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return dnderr.InvalidArgumentf("%s must be between %d and %d", field, lo, hi).
			WithMeta("field", field).
			WithMeta("value", value)
	}
	return nil
}
