// Package narration turns creature events into console lines and log entries.
package narration

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/creature-arena/internal/events"
)

// Narrator writes one line per event to an io.Writer
type Narrator struct {
	w io.Writer
}

// NewNarrator creates a narrator writing to w
func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w}
}

func (n *Narrator) ID() string    { return "narrator" }
func (n *Narrator) Priority() int { return events.PriorityNarration }

func (n *Narrator) HandleEvent(event events.Event) error {
	line := Describe(event)
	if line == "" {
		return nil
	}
	_, err := fmt.Fprintln(n.w, line)
	return err
}

// Describe renders an event as a sentence. Unknown events render as "".
func Describe(event events.Event) string {
	actor := event.GetActor().Name

	switch e := event.(type) {
	case *events.HealthChangedEvent:
		if e.Type == events.EventTypeHealed {
			return fmt.Sprintf("%s heals %d (health %d -> %d)", actor, e.Amount, e.Before, e.After)
		}
		return fmt.Sprintf("%s takes %d damage (health %d -> %d)", actor, e.Amount, e.Before, e.After)

	case *events.AttackEvent:
		target := targetName(e.Target)
		switch e.Type {
		case events.EventTypeFireBreathed:
			return fmt.Sprintf("%s breathes fire on %s for %d damage", actor, target, e.Damage)
		case events.EventTypeSpellCast:
			return fmt.Sprintf("%s casts a spell on %s for %d damage!", actor, target, e.Damage)
		default:
			return fmt.Sprintf("%s deals %d damage to %s", actor, e.Damage, target)
		}

	case *events.TurnStartedEvent:
		if e.Title == "" {
			return ""
		}
		return fmt.Sprintf("--- %s ---", e.Title)

	case *events.ResourceEvent:
		switch e.Type {
		case events.EventTypeRageGained:
			return fmt.Sprintf("%s gains %d rage (rage %d)", actor, e.After-e.Before, e.After)
		case events.EventTypeBerserkTriggered:
			return fmt.Sprintf("%s goes berserk", actor)
		default:
			return fmt.Sprintf("%s restores %d %s (%s %d -> %d)", actor, e.Amount, e.Resource, e.Resource, e.Before, e.After)
		}
	}

	return ""
}

func targetName(p *events.Participant) string {
	if p == nil {
		return "nobody"
	}
	return p.Name
}

// SubscribeAll registers listener for every creature event type
func SubscribeAll(bus *events.Bus, listener events.EventListener) {
	for _, eventType := range events.AllEventTypes {
		bus.Subscribe(eventType, listener)
	}
}
