package creatures

import (
	"fmt"

	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
)

const (
	MinFirePower     = 0
	MaxFirePower     = 100
	FirePowerCost    = 10
	FireBreathDamage = 20
)

// DragonConfig adds fire power to the shared creature inputs
type DragonConfig struct {
	Config
	FirePower int
}

// Dragon spends fire power to breathe fire on a target
type Dragon struct {
	Creature
	firePower int
}

// NewDragon validates cfg and returns a dragon
func NewDragon(cfg *DragonConfig) (*Dragon, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}

	base, err := newCreature(&cfg.Config, KindDragon, func() error {
		return validateRange("fire power", cfg.FirePower, MinFirePower, MaxFirePower)
	})
	if err != nil {
		return nil, err
	}

	return &Dragon{Creature: base, firePower: cfg.FirePower}, nil
}

func (d *Dragon) FirePower() int { return d.firePower }

// BreatheFire spends FirePowerCost and deals FireBreathDamage to target.
// With too little fire power nothing changes.
func (d *Dragon) BreatheFire(target Combatant) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	if d.firePower < FirePowerCost {
		return dnderr.LowResource("fire power", d.firePower, FirePowerCost).
			WithMeta("creature", d.name)
	}

	d.firePower -= FirePowerCost
	if err := target.TakeDamage(FireBreathDamage); err != nil {
		return err
	}

	return d.emit(&events.AttackEvent{
		BaseEvent:         d.event(events.EventTypeFireBreathed, target),
		Ability:           "breathe fire",
		Resource:          "fire power",
		ResourceRemaining: d.firePower,
		Damage:            FireBreathDamage,
		TargetHealth:      target.Health(),
	})
}

// RestoreFirePower adds amount, stopping at MaxFirePower
func (d *Dragon) RestoreFirePower(amount int) error {
	if amount < 0 {
		return dnderr.InvalidArgumentf("fire power restore amount must not be negative, got %d", amount)
	}

	before := d.firePower
	d.firePower = clamp(d.firePower+amount, MinFirePower, MaxFirePower)

	return d.emit(&events.ResourceEvent{
		BaseEvent: d.event(events.EventTypeResourceRestored, nil),
		Resource:  "fire power",
		Amount:    amount,
		Before:    before,
		After:     d.firePower,
	})
}

// Details extends the creature details with fire power
func (d *Dragon) Details() string {
	return fmt.Sprintf("%s\nFire power: %d", d.Creature.Details(), d.firePower)
}
