package events

// HealthChangedEvent is emitted after TakeDamage or Heal changes a creature's health
type HealthChangedEvent struct {
	BaseEvent
	Amount int // Requested amount, before clamping
	Before int
	After  int
}

// AttackEvent is emitted after a resource-gated attack lands on its target
type AttackEvent struct {
	BaseEvent
	Ability           string // "breathe fire", "cast spell", "berserk"
	Resource          string
	ResourceRemaining int
	Damage            int
	TargetHealth      int // Target health after the hit
}

// TurnStartedEvent is emitted once per scripted turn, before its first attempt
type TurnStartedEvent struct {
	BaseEvent
	Turn   int
	Title  string
	Action string
}

// ResourceEvent is emitted when a resource pool grows
type ResourceEvent struct {
	BaseEvent
	Resource string
	Amount   int
	Before   int
	After    int
}
