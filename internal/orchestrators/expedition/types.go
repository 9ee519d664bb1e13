package expedition

import (
	"github.com/ironvale/guild-api/internal/entities"
)

// ResolveQuestInput resolves a single completed quest
type ResolveQuestInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero

	// PartyLuckBonus is an optional registered-party drop bonus
	PartyLuckBonus float64
}

// ResolveQuestOutput carries the outcome
type ResolveQuestOutput struct {
	Result *entities.OutcomeResult
}

// StartDungeonInput opens a new dungeon run
type StartDungeonInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero
}

// StartDungeonOutput carries the created run
type StartDungeonOutput struct {
	Run *entities.DungeonRunState
}

// AdvanceFloorInput resolves the run's current floor
type AdvanceFloorInput struct {
	RunID  string
	Quest  *entities.Quest
	Heroes []*entities.Hero

	PartyLuckBonus float64
}

// AdvanceFloorOutput carries the floor outcome and updated run
type AdvanceFloorOutput struct {
	Run     *entities.DungeonRunState
	Outcome *entities.FloorOutcome

	// Completed is set when this floor finished the run; the bonus fields
	// hold the completion payout already added to the run totals
	Completed      bool
	CompletionGold int
	CompletionXP   int
}

// RetreatInput withdraws the party from a run
type RetreatInput struct {
	RunID string
}

// RetreatOutput carries the final run state with earned rewards kept
type RetreatOutput struct {
	Run *entities.DungeonRunState
}

// GetRunInput fetches a run by ID
type GetRunInput struct {
	RunID string
}

// GetRunOutput carries the run
type GetRunOutput struct {
	Run *entities.DungeonRunState
}
