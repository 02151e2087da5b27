package creatures

import (
	"fmt"

	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
)

const (
	MinRage        = 0
	MaxRage        = 30
	MinBerserkRage = 5
	RageGain       = 5

	// BerserkThreshold is the rage above which a berserk strike doubles
	BerserkThreshold = 20
	NormalDamage     = 15
	BerserkDamage    = 30
)

// OrcConfig adds rage to the shared creature inputs
type OrcConfig struct {
	Config
	Rage int
}

// Orc builds rage with every berserk attack
type Orc struct {
	Creature
	rage int
}

// NewOrc validates cfg and returns an orc
func NewOrc(cfg *OrcConfig) (*Orc, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}

	base, err := newCreature(&cfg.Config, KindOrc, func() error {
		return validateRange("rage", cfg.Rage, MinRage, MaxRage)
	})
	if err != nil {
		return nil, err
	}

	return &Orc{Creature: base, rage: cfg.Rage}, nil
}

func (o *Orc) Rage() int { return o.rage }

// Berserk needs at least MinBerserkRage. It gains RageGain (capped at
// MaxRage) and then strikes target for BerserkDamage when rage is above
// BerserkThreshold, NormalDamage otherwise. Events are published after the
// strike lands: rage_gained, berserk_triggered when it applies, then
// berserk_strike.
func (o *Orc) Berserk(target Combatant) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	if o.rage < MinBerserkRage {
		return dnderr.LowResource("rage", o.rage, MinBerserkRage).
			WithMeta("creature", o.name)
	}

	before := o.rage
	after := clamp(o.rage+RageGain, MinRage, MaxRage)

	damage := NormalDamage
	berserk := after > BerserkThreshold
	if berserk {
		damage = BerserkDamage
	}

	o.rage = after
	if err := target.TakeDamage(damage); err != nil {
		return err
	}

	gained := &events.ResourceEvent{
		BaseEvent: o.event(events.EventTypeRageGained, nil),
		Resource:  "rage",
		Amount:    RageGain,
		Before:    before,
		After:     after,
	}
	if err := o.emit(gained); err != nil {
		return err
	}

	if berserk {
		triggered := *gained
		triggered.Type = events.EventTypeBerserkTriggered
		if err := o.emit(&triggered); err != nil {
			return err
		}
	}

	return o.emit(&events.AttackEvent{
		BaseEvent:         o.event(events.EventTypeBerserkStrike, target),
		Ability:           "berserk",
		Resource:          "rage",
		ResourceRemaining: o.rage,
		Damage:            damage,
		TargetHealth:      target.Health(),
	})
}

func (o *Orc) Details() string {
	return fmt.Sprintf("%s\nRage: %d", o.Creature.Details(), o.rage)
}
