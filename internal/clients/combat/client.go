// Package combat defines the client interface to the external tactical
// combat simulator. Combat-flagged quests hand their resolution to it; the
// engine only translates its verdict into an outcome.
package combat

//go:generate mockgen -destination=mock/mock_client.go -package=combatmock github.com/ironvale/guild-api/internal/clients/combat Client

import (
	"context"

	"github.com/ironvale/guild-api/internal/entities"
)

// Client runs tactical combat for a quest
type Client interface {
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
}

// SimulateInput carries the quest and participants into the simulator
type SimulateInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero
}

// CombatantResult is the per-hero verdict of a combat
type CombatantResult struct {
	HeroID      string
	Alive       bool
	DamageDealt int
}

// SimulateOutput is the simulator's verdict
type SimulateOutput struct {
	LogID      string
	Success    bool
	Rounds     int
	Combatants []CombatantResult
	MVPHeroID  string
	Summary    string
}
