package creatures

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
	"github.com/KirkDiggler/creature-arena/internal/uuid"
)

const (
	MinHealth = 0
	MaxHealth = 100
)

// Config holds the inputs shared by every creature constructor
type Config struct {
	// ID is generated when empty
	ID          string
	Name        string
	DateOfBirth *calendar.Date
	Health      int

	// Clock supplies "today" for birth date validation and age. Defaults to
	// calendar.DefaultClock().
	Clock calendar.Clock

	// Emitter receives the creature's events. Optional.
	Emitter Emitter

	UUIDGenerator uuid.Generator
}

// Creature is the base entity. Name, ID and date of birth never change after
// construction; health stays within [MinHealth, MaxHealth].
type Creature struct {
	id          string
	kind        Kind
	name        string
	dateOfBirth calendar.Date
	health      int

	clock   calendar.Clock
	emitter Emitter
}

// NewCreature validates cfg and returns a plain creature
func NewCreature(cfg *Config) (*Creature, error) {
	c, err := newCreature(cfg, KindCreature)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// newCreature validates the shared fields, then runs the subtype checks, and
// only then assigns an ID.
func newCreature(cfg *Config, kind Kind, checks ...func() error) (Creature, error) {
	if cfg == nil {
		return Creature{}, dnderr.InvalidArgument("config is required")
	}

	if strings.TrimSpace(cfg.Name) == "" {
		return Creature{}, dnderr.InvalidArgument("name cannot be empty or blank")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = calendar.DefaultClock()
	}

	if cfg.DateOfBirth == nil || cfg.DateOfBirth.IsZero() {
		return Creature{}, dnderr.InvalidArgument("date of birth is required")
	}

	today := clock.Today()
	if cfg.DateOfBirth.After(today) {
		return Creature{}, dnderr.InvalidArgumentf("date of birth %s is after %s", cfg.DateOfBirth, today).
			WithMeta("date_of_birth", cfg.DateOfBirth.String())
	}

	if err := validateRange("health", cfg.Health, MinHealth, MaxHealth); err != nil {
		return Creature{}, err
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return Creature{}, err
		}
	}

	id := cfg.ID
	if id == "" {
		gen := cfg.UUIDGenerator
		if gen == nil {
			gen = uuid.NewGoogleUUIDGenerator()
		}
		id = gen.New()
	}

	return Creature{
		id:          id,
		kind:        kind,
		name:        cfg.Name,
		dateOfBirth: *cfg.DateOfBirth,
		health:      cfg.Health,
		clock:       clock,
		emitter:     cfg.Emitter,
	}, nil
}

func (c *Creature) ID() string                 { return c.id }
func (c *Creature) Kind() Kind                 { return c.kind }
func (c *Creature) Name() string               { return c.name }
func (c *Creature) DateOfBirth() calendar.Date { return c.dateOfBirth }
func (c *Creature) Health() int                { return c.health }

// AgeYears returns the completed years between birth and the clock's today.
func (c *Creature) AgeYears() int {
	clock := c.clock
	if clock == nil {
		clock = calendar.DefaultClock()
	}
	return c.dateOfBirth.YearsUntil(clock.Today())
}

// IsAlive reports whether health is above zero
func (c *Creature) IsAlive() bool {
	return c.health > MinHealth
}

// TakeDamage lowers health by amount, stopping at zero
func (c *Creature) TakeDamage(amount int) error {
	if amount < 0 {
		return dnderr.Damagef("damage must not be negative, got %d", amount).
			WithMeta("creature", c.name)
	}

	before := c.health
	c.health = clamp(c.health-amount, MinHealth, MaxHealth)

	return c.emit(&events.HealthChangedEvent{
		BaseEvent: c.event(events.EventTypeDamageTaken, nil),
		Amount:    amount,
		Before:    before,
		After:     c.health,
	})
}

// Heal raises health by amount, stopping at MaxHealth
func (c *Creature) Heal(amount int) error {
	if amount < 0 {
		return dnderr.Healingf("healing amount must not be negative, got %d", amount).
			WithMeta("creature", c.name)
	}

	before := c.health
	c.health = clamp(c.health+amount, MinHealth, MaxHealth)

	return c.emit(&events.HealthChangedEvent{
		BaseEvent: c.event(events.EventTypeHealed, nil),
		Amount:    amount,
		Before:    before,
		After:     c.health,
	})
}

// Details renders name, birth date, age and health, one per line
func (c *Creature) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.name)
	fmt.Fprintf(&b, "Date of birth: %s\n", c.dateOfBirth.Compact())
	fmt.Fprintf(&b, "Age: %d\n", c.AgeYears())
	fmt.Fprintf(&b, "Health: %d", c.health)
	return b.String()
}

func (c *Creature) event(eventType events.EventType, target Combatant) events.BaseEvent {
	e := events.BaseEvent{
		Type:  eventType,
		Actor: events.Participant{ID: c.id, Name: c.name},
	}
	if target != nil {
		e.Target = participant(target)
	}
	return e
}

// emit publishes to the emitter if one is set. The caller's state change has
// already happened, so failures come back as internal errors.
func (c *Creature) emit(event events.Event) error {
	if c.emitter == nil {
		return nil
	}
	if err := c.emitter.Emit(event); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal,
			fmt.Sprintf("publish %s for %s", event.GetType(), c.name))
	}
	return nil
}
