package battle

import (
	"github.com/KirkDiggler/creature-arena/internal/creatures"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
	"github.com/KirkDiggler/creature-arena/internal/scenario"
)

// Outcome records a single attempt of a turn
type Outcome struct {
	Turn    int
	Attempt int
	Title   string
	Actor   string
	Action  scenario.Action
	Target  string

	// Err is nil when the action succeeded
	Err  error
	Code dnderr.Code
}

// Succeeded reports whether the attempt went through
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Status is a combatant's state at the end of a battle
type Status struct {
	ID     string
	Name   string
	Kind   creatures.Kind
	Health int
	Alive  bool
}

// StatusOf snapshots c
func StatusOf(c creatures.Combatant) Status {
	return Status{
		ID:     c.ID(),
		Name:   c.Name(),
		Kind:   c.Kind(),
		Health: c.Health(),
		Alive:  c.IsAlive(),
	}
}

// Report is the result of a battle run
type Report struct {
	Outcomes []Outcome
	Final    []Status
}

// Failures returns the attempts that failed, in play order
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Survivors returns the names of creatures still alive
func (r *Report) Survivors() []string {
	var alive []string
	for _, s := range r.Final {
		if s.Alive {
			alive = append(alive, s.Name)
		}
	}
	return alive
}
