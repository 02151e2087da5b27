package creatures_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
	"github.com/stretchr/testify/suite"
)

type CombatEventsSuite struct {
	suite.Suite
	bus      *events.Bus
	recorder *recorder

	dragon *creatures.Dragon
	elf    *creatures.Elf
	orc    *creatures.Orc
}

func TestCombatEventsSuite(t *testing.T) {
	suite.Run(t, new(CombatEventsSuite))
}

func (s *CombatEventsSuite) SetupTest() {
	s.bus = events.NewBus(nil)
	s.recorder = &recorder{}
	for _, eventType := range events.AllEventTypes {
		s.bus.Subscribe(eventType, s.recorder)
	}

	var err error
	s.dragon, err = creatures.NewDragon(&creatures.DragonConfig{
		Config:    creatures.Config{ID: "d", Name: "Smaug", DateOfBirth: date(1974, 1, 15), Health: 95, Emitter: s.bus},
		FirePower: 80,
	})
	s.Require().NoError(err)

	s.elf, err = creatures.NewElf(&creatures.ElfConfig{
		Config: creatures.Config{ID: "e", Name: "Legolas", DateOfBirth: date(1924, 3, 22), Health: 85, Emitter: s.bus},
		Mana:   45,
	})
	s.Require().NoError(err)

	s.orc, err = creatures.NewOrc(&creatures.OrcConfig{
		Config: creatures.Config{ID: "o", Name: "Grommash", DateOfBirth: date(1999, 7, 10), Health: 90, Emitter: s.bus},
		Rage:   18,
	})
	s.Require().NoError(err)
}

func (s *CombatEventsSuite) TestBreatheFire() {
	s.Require().NoError(s.dragon.BreatheFire(s.elf))

	s.Equal([]events.EventType{events.EventTypeDamageTaken, events.EventTypeFireBreathed}, s.recorder.types())

	damaged := s.recorder.events[0].(*events.HealthChangedEvent)
	s.Equal("Legolas", damaged.Actor.Name)
	s.Equal(85, damaged.Before)
	s.Equal(65, damaged.After)

	attack := s.recorder.events[1].(*events.AttackEvent)
	s.Equal("Smaug", attack.Actor.Name)
	s.Require().NotNil(attack.Target)
	s.Equal("e", attack.Target.ID)
	s.Equal(20, attack.Damage)
	s.Equal(70, attack.ResourceRemaining)
	s.Equal(65, attack.TargetHealth)
}

func (s *CombatEventsSuite) TestCastSpell() {
	s.Require().NoError(s.elf.CastSpell(s.orc))

	s.Equal([]events.EventType{events.EventTypeDamageTaken, events.EventTypeSpellCast}, s.recorder.types())
	attack := s.recorder.events[1].(*events.AttackEvent)
	s.Equal(10, attack.Damage)
	s.Equal(40, attack.ResourceRemaining)
}

func (s *CombatEventsSuite) TestBerserkTriggered() {
	s.Require().NoError(s.orc.Berserk(s.dragon))

	s.Equal([]events.EventType{
		events.EventTypeDamageTaken,
		events.EventTypeRageGained,
		events.EventTypeBerserkTriggered,
		events.EventTypeBerserkStrike,
	}, s.recorder.types())

	gained := s.recorder.events[1].(*events.ResourceEvent)
	s.Equal(18, gained.Before)
	s.Equal(23, gained.After)

	strike := s.recorder.events[3].(*events.AttackEvent)
	s.Equal(30, strike.Damage)
	s.Equal(65, strike.TargetHealth)
}

func (s *CombatEventsSuite) TestBerserkBelowThreshold() {
	orc, err := creatures.NewOrc(&creatures.OrcConfig{
		Config: creatures.Config{ID: "o2", Name: "Thrall", DateOfBirth: date(1999, 7, 10), Health: 90, Emitter: s.bus},
		Rage:   15,
	})
	s.Require().NoError(err)

	s.Require().NoError(orc.Berserk(s.dragon))

	s.Equal([]events.EventType{
		events.EventTypeDamageTaken,
		events.EventTypeRageGained,
		events.EventTypeBerserkStrike,
	}, s.recorder.types())
	s.Equal(80, s.dragon.Health())
}

func (s *CombatEventsSuite) TestFailuresPublishNothing() {
	s.Error(s.dragon.TakeDamage(-1))
	s.Error(s.elf.Heal(-1))
	s.Error(s.dragon.RestoreFirePower(-1))

	weak, err := creatures.NewOrc(&creatures.OrcConfig{
		Config: creatures.Config{ID: "w", Name: "WeakOrc", DateOfBirth: date(1999, 7, 10), Health: 50, Emitter: s.bus},
		Rage:   3,
	})
	s.Require().NoError(err)
	s.True(dnderr.IsLowResource(weak.Berserk(s.dragon)))

	s.Empty(s.recorder.events)
}

func (s *CombatEventsSuite) TestRestoreAndHeal() {
	s.Require().NoError(s.elf.RestoreMana(10))
	s.Require().NoError(s.orc.Heal(50))

	s.Equal([]events.EventType{events.EventTypeResourceRestored, events.EventTypeHealed}, s.recorder.types())

	restored := s.recorder.events[0].(*events.ResourceEvent)
	s.Equal("mana", restored.Resource)
	s.Equal(50, restored.After)

	healed := s.recorder.events[1].(*events.HealthChangedEvent)
	s.Equal(100, healed.After)
	s.Equal(50, healed.Amount)
}

func (s *CombatEventsSuite) TestListenerFailureIsInternal() {
	s.bus.Subscribe(events.EventTypeFireBreathed, &failingListener{})

	err := s.dragon.BreatheFire(s.elf)
	s.True(dnderr.IsInternal(err))

	// The attack itself already happened
	s.Equal(70, s.dragon.FirePower())
	s.Equal(65, s.elf.Health())
}

func (s *CombatEventsSuite) TestBerserkListenerFailureKeepsStrike() {
	target, err := creatures.NewCreature(&creatures.Config{
		ID: "t", Name: "Dummy", DateOfBirth: date(2020, 1, 1), Health: 100, Emitter: s.bus,
	})
	s.Require().NoError(err)
	s.bus.Subscribe(events.EventTypeRageGained, &failingListener{})

	err = s.orc.Berserk(target)
	s.True(dnderr.IsInternal(err))

	// Rage and damage both landed before the failing publish
	s.Equal(23, s.orc.Rage())
	s.Equal(70, target.Health())
	s.NotContains(s.recorder.types(), events.EventTypeBerserkStrike)
}

type recorder struct {
	events []events.Event
}

func (r *recorder) ID() string    { return "recorder" }
func (r *recorder) Priority() int { return events.PriorityNarration }
func (r *recorder) HandleEvent(e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.GetType())
	}
	return out
}

type failingListener struct{}

func (failingListener) ID() string                     { return "failing" }
func (failingListener) Priority() int                  { return events.PriorityAudit }
func (failingListener) HandleEvent(events.Event) error { return errors.New("closed pipe") }
