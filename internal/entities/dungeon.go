package entities

import "time"

// RunStatus is the dungeon run state machine position
type RunStatus string

// Run statuses
const (
	RunNotStarted RunStatus = "not_started"
	RunInProgress RunStatus = "in_progress"
	RunRetreated  RunStatus = "retreated"
	RunCompleted  RunStatus = "completed"
)

// FloorOutcome records one resolved floor
type FloorOutcome struct {
	Floor   int           `json:"floor"`
	Cleared bool          `json:"cleared"`
	Result  OutcomeResult `json:"result"`
}

// DungeonRunState tracks a multi-floor quest through escalating fatigue and
// risk. Fatigue derives from the floor index and never decreases within a
// run; retreat is terminal.
type DungeonRunState struct {
	ID      string   `json:"id"`
	QuestID string   `json:"quest_id"`
	HeroIDs []string `json:"hero_ids"`

	FloorCount   int       `json:"floor_count"`
	CurrentFloor int       `json:"current_floor"`
	Status       RunStatus `json:"status"`

	Floors            []FloorOutcome `json:"floors,omitempty"`
	CumulativeFatigue float64        `json:"cumulative_fatigue"`

	Gold    int      `json:"gold"`
	XP      int      `json:"xp"`
	Rewards []Reward `json:"rewards,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the run's ID
func (r *DungeonRunState) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *DungeonRunState) GetType() string {
	return "dungeon_run"
}

// FloorsCleared counts successfully cleared floors
func (r *DungeonRunState) FloorsCleared() int {
	n := 0
	for _, f := range r.Floors {
		if f.Cleared {
			n++
		}
	}
	return n
}

// HasRetreated reports whether the party retreated from this run
func (r *DungeonRunState) HasRetreated() bool {
	return r.Status == RunRetreated
}

// Terminal reports whether the run accepts no further floor calls
func (r *DungeonRunState) Terminal() bool {
	return r.Status == RunRetreated || r.Status == RunCompleted
}
