package narration

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/creature-arena/internal/events"
)

// Logger records every event as a structured log entry
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates an event logger. A nil logger discards entries.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("combat")}
}

func (l *Logger) ID() string    { return "combat-log" }
func (l *Logger) Priority() int { return events.PriorityAudit }

func (l *Logger) HandleEvent(event events.Event) error {
	fields := []zap.Field{
		zap.String("event", string(event.GetType())),
		zap.String("actor_id", event.GetActor().ID),
		zap.String("actor", event.GetActor().Name),
	}
	if target := event.GetTarget(); target != nil {
		fields = append(fields,
			zap.String("target_id", target.ID),
			zap.String("target", target.Name))
	}

	switch e := event.(type) {
	case *events.HealthChangedEvent:
		fields = append(fields,
			zap.Int("amount", e.Amount),
			zap.Int("health_before", e.Before),
			zap.Int("health_after", e.After))
	case *events.AttackEvent:
		fields = append(fields,
			zap.String("ability", e.Ability),
			zap.Int("damage", e.Damage),
			zap.String("resource", e.Resource),
			zap.Int("resource_remaining", e.ResourceRemaining),
			zap.Int("target_health", e.TargetHealth))
	case *events.TurnStartedEvent:
		fields = append(fields,
			zap.Int("turn", e.Turn),
			zap.String("title", e.Title),
			zap.String("action", e.Action))
	case *events.ResourceEvent:
		fields = append(fields,
			zap.String("resource", e.Resource),
			zap.Int("amount", e.Amount),
			zap.Int("before", e.Before),
			zap.Int("after", e.After))
	}

	l.logger.Info("creature event", fields...)
	return nil
}
