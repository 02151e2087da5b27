// Package scenario describes a battle as YAML: the creatures taking part and
// the turns they play.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
)

//go:embed default.yaml
var defaultScenario []byte

// Action names a turn's operation
type Action string

const (
	ActionBreatheFire      Action = "breathe_fire"
	ActionCastSpell        Action = "cast_spell"
	ActionBerserk          Action = "berserk"
	ActionTakeDamage       Action = "take_damage"
	ActionHeal             Action = "heal"
	ActionRestoreFirePower Action = "restore_fire_power"
	ActionRestoreMana      Action = "restore_mana"
)

// RequiresTarget reports whether the action is an attack
func (a Action) RequiresTarget() bool {
	switch a {
	case ActionBreatheFire, ActionCastSpell, ActionBerserk:
		return true
	}
	return false
}

// RequiresAmount reports whether the action takes an amount
func (a Action) RequiresAmount() bool {
	switch a {
	case ActionTakeDamage, ActionHeal, ActionRestoreFirePower, ActionRestoreMana:
		return true
	}
	return false
}

// ActorKind is the creature kind able to perform the action. Empty means any.
func (a Action) ActorKind() creatures.Kind {
	switch a {
	case ActionBreatheFire, ActionRestoreFirePower:
		return creatures.KindDragon
	case ActionCastSpell, ActionRestoreMana:
		return creatures.KindElf
	case ActionBerserk:
		return creatures.KindOrc
	}
	return ""
}

func (a Action) valid() bool {
	return a.RequiresTarget() || a.RequiresAmount()
}

// Scenario is a roster plus scripted turns
type Scenario struct {
	// ReferenceDate overrides the configured "today" when set (YYYY-MM-DD)
	ReferenceDate string         `yaml:"reference_date,omitempty"`
	Creatures     []CreatureSpec `yaml:"creatures"`
	Turns         []Turn         `yaml:"turns"`
}

// CreatureSpec declares one creature. Exactly the resource matching Kind may be set.
type CreatureSpec struct {
	Kind      string `yaml:"kind"`
	Name      string `yaml:"name"`
	Born      string `yaml:"born"`
	Health    int    `yaml:"health"`
	FirePower *int   `yaml:"fire_power,omitempty"`
	Mana      *int   `yaml:"mana,omitempty"`
	Rage      *int   `yaml:"rage,omitempty"`
}

// Resource returns the value of the kind's resource field, zero when unset
func (c CreatureSpec) Resource() int {
	for _, v := range []*int{c.FirePower, c.Mana, c.Rage} {
		if v != nil {
			return *v
		}
	}
	return 0
}

// Turn is one scripted action
type Turn struct {
	Title  string `yaml:"title,omitempty"`
	Actor  string `yaml:"actor"`
	Action Action `yaml:"action"`
	Target string `yaml:"target,omitempty"`
	Amount *int   `yaml:"amount,omitempty"`

	// Repeat plays the action up to this many times, stopping at the first
	// failure. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Attempts is the number of times the turn is played at most
func (t Turn) Attempts() int {
	if t.Repeat < 1 {
		return 1
	}
	return t.Repeat
}

// Parse decodes and validates a scenario document
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dnderr.InvalidArgument("scenario is empty")
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "decode scenario")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeNotFound, fmt.Sprintf("scenario %s", path))
		}
		return nil, dnderr.Wrapf(err, "read scenario %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, dnderr.Wrapf(err, "scenario %s", path)
	}
	return s, nil
}

// Default returns the built-in demonstration battle
func Default() *Scenario {
	s, err := Parse(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("default scenario is invalid: %v", err))
	}
	return s
}

// Clock returns a fixed clock at ReferenceDate, or nil when none is set
func (s *Scenario) Clock() (calendar.Clock, error) {
	if s.ReferenceDate == "" {
		return nil, nil
	}
	d, err := calendar.Parse(s.ReferenceDate)
	if err != nil {
		return nil, dnderr.Wrap(err, "reference_date")
	}
	return calendar.FixedClock(d), nil
}

// Validate checks the scenario's structure. Value ranges (health, resources,
// birth dates against today) are left to the creature constructors.
func (s *Scenario) Validate() error {
	if len(s.Creatures) == 0 {
		return dnderr.InvalidArgument("scenario declares no creatures")
	}

	if _, err := s.Clock(); err != nil {
		return err
	}

	kinds := make(map[string]creatures.Kind, len(s.Creatures))
	for i, c := range s.Creatures {
		kind, err := c.validate()
		if err != nil {
			return dnderr.Wrapf(err, "creatures[%d]", i)
		}

		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, dup := kinds[key]; dup {
			return dnderr.InvalidArgumentf("creatures[%d]: duplicate name %q", i, c.Name)
		}
		kinds[key] = kind
	}

	for i, t := range s.Turns {
		if err := t.validate(kinds); err != nil {
			return dnderr.Wrapf(err, "turns[%d]", i)
		}
	}

	return nil
}

func (c CreatureSpec) validate() (creatures.Kind, error) {
	kind, err := creatures.ParseKind(c.Kind)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(c.Name) == "" {
		return "", dnderr.InvalidArgument("name is required")
	}

	if _, err := calendar.Parse(c.Born); err != nil {
		return "", dnderr.Wrap(err, "born")
	}

	set := map[creatures.Kind]bool{
		creatures.KindDragon: c.FirePower != nil,
		creatures.KindElf:    c.Mana != nil,
		creatures.KindOrc:    c.Rage != nil,
	}
	for k, isSet := range set {
		if k == kind && !isSet {
			return "", dnderr.InvalidArgumentf("%s %q needs its %s", kind, c.Name, resourceField(kind))
		}
		if k != kind && isSet {
			return "", dnderr.InvalidArgumentf("%s %q cannot have %s", kind, c.Name, resourceField(k))
		}
	}

	return kind, nil
}

func resourceField(kind creatures.Kind) string {
	switch kind {
	case creatures.KindDragon:
		return "fire_power"
	case creatures.KindElf:
		return "mana"
	case creatures.KindOrc:
		return "rage"
	}
	return ""
}

func (t Turn) validate(kinds map[string]creatures.Kind) error {
	if !t.Action.valid() {
		return dnderr.InvalidArgumentf("unknown action %q", t.Action)
	}

	actorKind, ok := kinds[strings.ToLower(strings.TrimSpace(t.Actor))]
	if !ok {
		return dnderr.InvalidArgumentf("unknown actor %q", t.Actor)
	}

	if want := t.Action.ActorKind(); want != "" && want != actorKind {
		return dnderr.InvalidArgumentf("%s cannot %s: only a %s can", t.Actor, t.Action, want)
	}

	if t.Action.RequiresTarget() {
		if _, ok := kinds[strings.ToLower(strings.TrimSpace(t.Target))]; !ok {
			return dnderr.InvalidArgumentf("unknown target %q", t.Target)
		}
	} else if t.Target != "" {
		return dnderr.InvalidArgumentf("%s takes no target", t.Action)
	}

	if t.Action.RequiresAmount() && t.Amount == nil {
		return dnderr.InvalidArgumentf("%s needs an amount", t.Action)
	}
	if !t.Action.RequiresAmount() && t.Amount != nil {
		return dnderr.InvalidArgumentf("%s takes no amount", t.Action)
	}

	if t.Repeat < 0 {
		return dnderr.InvalidArgumentf("repeat must not be negative, got %d", t.Repeat)
	}

	return nil
}
