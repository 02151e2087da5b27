package creatures

import (
	"fmt"

	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
)

const (
	MinMana     = 0
	MaxMana     = 50
	ManaCost    = 5
	SpellDamage = 10
)

// ElfConfig adds mana to the shared creature inputs
type ElfConfig struct {
	Config
	Mana int
}

// Elf spends mana to cast spells
type Elf struct {
	Creature
	mana int
}

// NewElf validates cfg and returns an elf
func NewElf(cfg *ElfConfig) (*Elf, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}

	base, err := newCreature(&cfg.Config, KindElf, func() error {
		return validateRange("mana", cfg.Mana, MinMana, MaxMana)
	})
	if err != nil {
		return nil, err
	}

	return &Elf{Creature: base, mana: cfg.Mana}, nil
}

func (e *Elf) Mana() int { return e.mana }

// CastSpell spends ManaCost and deals SpellDamage to target
func (e *Elf) CastSpell(target Combatant) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	if e.mana < ManaCost {
		return dnderr.LowResource("mana", e.mana, ManaCost).
			WithMeta("creature", e.name)
	}

	e.mana -= ManaCost
	if err := target.TakeDamage(SpellDamage); err != nil {
		return err
	}

	return e.emit(&events.AttackEvent{
		BaseEvent:         e.event(events.EventTypeSpellCast, target),
		Ability:           "cast spell",
		Resource:          "mana",
		ResourceRemaining: e.mana,
		Damage:            SpellDamage,
		TargetHealth:      target.Health(),
	})
}

// RestoreMana adds amount, stopping at MaxMana
func (e *Elf) RestoreMana(amount int) error {
	if amount < 0 {
		return dnderr.InvalidArgumentf("mana restore amount must not be negative, got %d", amount)
	}

	before := e.mana
	e.mana = clamp(e.mana+amount, MinMana, MaxMana)

	return e.emit(&events.ResourceEvent{
		BaseEvent: e.event(events.EventTypeResourceRestored, nil),
		Resource:  "mana",
		Amount:    amount,
		Before:    before,
		After:     e.mana,
	})
}

func (e *Elf) Details() string {
	return fmt.Sprintf("%s\nMana: %d", e.Creature.Details(), e.mana)
}
