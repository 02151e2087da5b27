package events

// Event type constants
const (
	// Health events, emitted by the creature whose health changed
	EventTypeDamageTaken EventType = "damage_taken"
	EventTypeHealed      EventType = "healed"

	// Attack events, emitted by the attacker
	EventTypeFireBreathed     EventType = "fire_breathed"
	EventTypeSpellCast        EventType = "spell_cast"
	EventTypeRageGained       EventType = "rage_gained"
	EventTypeBerserkTriggered EventType = "berserk_triggered"
	EventTypeBerserkStrike    EventType = "berserk_strike"

	// Resource events
	EventTypeResourceRestored EventType = "resource_restored"

	// Battle events, emitted by the battle service before a turn is played
	EventTypeTurnStarted EventType = "turn_started"
)

// AllEventTypes lists every event type published on the bus, in the order
// they are documented above.
var AllEventTypes = []EventType{
	EventTypeDamageTaken,
	EventTypeHealed,
	EventTypeFireBreathed,
	EventTypeSpellCast,
	EventTypeRageGained,
	EventTypeBerserkTriggered,
	EventTypeBerserkStrike,
	EventTypeResourceRestored,
	EventTypeTurnStarted,
}

// Priority levels for listener order
const (
	PriorityNarration = 100 // Console output
	PriorityAudit     = 200 // Structured logs
)
