package battle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/events"
	"github.com/KirkDiggler/creature-arena/internal/repositories/roster"
	"github.com/KirkDiggler/creature-arena/internal/scenario"
	"github.com/KirkDiggler/creature-arena/internal/uuid"
)

// Service builds rosters and plays scenarios against them
type Service interface {
	// Spawn creates a creature and adds it to the roster
	Spawn(ctx context.Context, input *SpawnInput) (creatures.Combatant, error)

	// Setup spawns every creature a scenario declares
	Setup(ctx context.Context, sc *scenario.Scenario) error

	// Run sets up the scenario and plays its turns. Creature failures are
	// recorded in the report, they do not stop the run.
	Run(ctx context.Context, sc *scenario.Scenario) (*Report, error)

	// Roster lists the current combatants
	Roster(ctx context.Context) ([]creatures.Combatant, error)
}

// SpawnInput describes a creature to create. Resource is the fire power, mana
// or rage for dragons, elves and orcs, and is ignored for plain creatures.
type SpawnInput struct {
	Kind        creatures.Kind
	Name        string
	DateOfBirth *calendar.Date
	Health      int
	Resource    int

	// Clock overrides the service clock for this creature
	Clock calendar.Clock
}

type service struct {
	repository    roster.Repository
	clock         calendar.Clock
	bus           *events.Bus
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// ServiceConfig holds the service dependencies. Repository is required.
type ServiceConfig struct {
	Repository    roster.Repository
	Clock         calendar.Clock
	Bus           *events.Bus
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		clock:         cfg.Clock,
		bus:           cfg.Bus,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}

	if svc.clock == nil {
		svc.clock = calendar.DefaultClock()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	svc.logger = svc.logger.Named("battle")

	return svc
}

func (s *service) Spawn(ctx context.Context, input *SpawnInput) (creatures.Combatant, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	clock := input.Clock
	if clock == nil {
		clock = s.clock
	}

	base := creatures.Config{
		Name:          input.Name,
		DateOfBirth:   input.DateOfBirth,
		Health:        input.Health,
		Clock:         clock,
		UUIDGenerator: s.uuidGenerator,
	}
	// Avoid storing a typed nil *events.Bus in the Emitter interface
	if s.bus != nil {
		base.Emitter = s.bus
	}

	var (
		combatant creatures.Combatant
		err       error
	)
	switch input.Kind {
	case creatures.KindCreature:
		combatant, err = creatures.NewCreature(&base)
	case creatures.KindDragon:
		combatant, err = creatures.NewDragon(&creatures.DragonConfig{Config: base, FirePower: input.Resource})
	case creatures.KindElf:
		combatant, err = creatures.NewElf(&creatures.ElfConfig{Config: base, Mana: input.Resource})
	case creatures.KindOrc:
		combatant, err = creatures.NewOrc(&creatures.OrcConfig{Config: base, Rage: input.Resource})
	default:
		return nil, dnderr.InvalidArgumentf("unknown creature kind %q", input.Kind)
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "spawn %s %q", input.Kind, input.Name)
	}

	if err := s.repository.Add(ctx, combatant); err != nil {
		return nil, dnderr.Wrapf(err, "add %q to roster", input.Name)
	}

	s.logger.Info("creature spawned",
		zap.String("id", combatant.ID()),
		zap.String("name", combatant.Name()),
		zap.String("kind", string(combatant.Kind())),
		zap.Int("health", combatant.Health()))

	return combatant, nil
}

func (s *service) Setup(ctx context.Context, sc *scenario.Scenario) error {
	if sc == nil {
		return dnderr.InvalidArgument("scenario cannot be nil")
	}

	if err := sc.Validate(); err != nil {
		return err
	}

	clock, err := sc.Clock()
	if err != nil {
		return err
	}

	for _, def := range sc.Creatures {
		// Validate has already checked kind and birth date
		kind, _ := creatures.ParseKind(def.Kind)
		born, _ := calendar.Parse(def.Born)

		_, err := s.Spawn(ctx, &SpawnInput{
			Kind:        kind,
			Name:        def.Name,
			DateOfBirth: &born,
			Health:      def.Health,
			Resource:    def.Resource(),
			Clock:       clock,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Run(ctx context.Context, sc *scenario.Scenario) (*Report, error) {
	if err := s.Setup(ctx, sc); err != nil {
		return nil, err
	}

	report := &Report{}
	for i, turn := range sc.Turns {
		if err := ctx.Err(); err != nil {
			return nil, dnderr.Wrapf(err, "battle interrupted before turn %d", i)
		}

		s.announce(ctx, i, turn)

		for attempt := 1; attempt <= turn.Attempts(); attempt++ {
			outcome := s.play(ctx, i, attempt, turn)
			report.Outcomes = append(report.Outcomes, outcome)
			if outcome.Err != nil {
				break
			}
		}
	}

	final, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range final {
		report.Final = append(report.Final, StatusOf(c))
	}

	return report, nil
}

func (s *service) Roster(ctx context.Context) ([]creatures.Combatant, error) {
	return s.repository.List(ctx)
}

// announce publishes the start of a turn. Publishing failures are logged and
// the turn is still played.
func (s *service) announce(ctx context.Context, index int, turn scenario.Turn) {
	if s.bus == nil {
		return
	}

	actor := events.Participant{Name: turn.Actor}
	if c, err := s.repository.GetByName(ctx, turn.Actor); err == nil {
		actor = events.Participant{ID: c.ID(), Name: c.Name()}
	}

	err := s.bus.Emit(&events.TurnStartedEvent{
		BaseEvent: events.BaseEvent{
			Type:  events.EventTypeTurnStarted,
			Actor: actor,
		},
		Turn:   index,
		Title:  turn.Title,
		Action: string(turn.Action),
	})
	if err != nil {
		s.logger.Warn("turn announcement failed",
			zap.Int("turn", index),
			zap.String("title", turn.Title),
			zap.Error(err))
	}
}

func (s *service) play(ctx context.Context, index, attempt int, turn scenario.Turn) Outcome {
	outcome := Outcome{
		Turn:    index,
		Attempt: attempt,
		Title:   turn.Title,
		Actor:   turn.Actor,
		Action:  turn.Action,
		Target:  turn.Target,
	}

	err := s.perform(ctx, turn)
	if err != nil {
		outcome.Err = err
		outcome.Code = dnderr.GetCode(err)

		s.logger.Warn("turn failed",
			zap.Int("turn", index),
			zap.Int("attempt", attempt),
			zap.String("actor", turn.Actor),
			zap.String("action", string(turn.Action)),
			zap.String("code", string(outcome.Code)),
			zap.Error(err))
		return outcome
	}

	s.logger.Debug("turn played",
		zap.Int("turn", index),
		zap.Int("attempt", attempt),
		zap.String("actor", turn.Actor),
		zap.String("action", string(turn.Action)))
	return outcome
}

func (s *service) perform(ctx context.Context, turn scenario.Turn) error {
	actor, err := s.repository.GetByName(ctx, turn.Actor)
	if err != nil {
		return err
	}

	var target creatures.Combatant
	if turn.Action.RequiresTarget() {
		target, err = s.repository.GetByName(ctx, turn.Target)
		if err != nil {
			return err
		}
	}

	amount := 0
	if turn.Amount != nil {
		amount = *turn.Amount
	}

	switch turn.Action {
	case scenario.ActionTakeDamage:
		return actor.TakeDamage(amount)
	case scenario.ActionHeal:
		return actor.Heal(amount)
	case scenario.ActionBreatheFire, scenario.ActionRestoreFirePower:
		dragon, ok := actor.(*creatures.Dragon)
		if !ok {
			return wrongKind(actor, turn.Action)
		}
		if turn.Action == scenario.ActionBreatheFire {
			return dragon.BreatheFire(target)
		}
		return dragon.RestoreFirePower(amount)
	case scenario.ActionCastSpell, scenario.ActionRestoreMana:
		elf, ok := actor.(*creatures.Elf)
		if !ok {
			return wrongKind(actor, turn.Action)
		}
		if turn.Action == scenario.ActionCastSpell {
			return elf.CastSpell(target)
		}
		return elf.RestoreMana(amount)
	case scenario.ActionBerserk:
		orc, ok := actor.(*creatures.Orc)
		if !ok {
			return wrongKind(actor, turn.Action)
		}
		return orc.Berserk(target)
	}

	return dnderr.InvalidArgumentf("unknown action %q", turn.Action)
}

func wrongKind(actor creatures.Combatant, action scenario.Action) error {
	return dnderr.InvalidArgument(fmt.Sprintf("%s is a %s and cannot %s", actor.Name(), actor.Kind(), action)).
		WithMeta("kind", string(actor.Kind()))
}
