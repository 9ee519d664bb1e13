// Package engine defines the quest resolution engine interface.
//
// The engine is the pure rules core: party + quest in, success probability
// and consequences out. It owns no timers and no persistence; the world
// clock layer invokes it once per completed execute-phase or per dungeon
// floor.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/ironvale/guild-api/internal/engine Engine

import (
	"context"
)

// Engine computes quest success chances and resolves outcomes
type Engine interface {
	// CalculateSuccessChance combines every contributor into one clamped
	// probability. Pure: no randomness, no state.
	CalculateSuccessChance(
		ctx context.Context,
		input *CalculateSuccessChanceInput,
	) (*CalculateSuccessChanceOutput, error)

	// Resolve rolls the outcome and applies consequences. Hero injury
	// fields are written in place; everything else is returned.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// CalculateSynergies evaluates class composition rules and the passive
	// archetype for a party.
	CalculateSynergies(
		ctx context.Context,
		input *CalculateSynergiesInput,
	) (*CalculateSynergiesOutput, error)

	// GetPartyPassiveEffects aggregates hero passives into reward and
	// survival modifiers.
	GetPartyPassiveEffects(
		ctx context.Context,
		input *GetPartyPassiveEffectsInput,
	) (*GetPartyPassiveEffectsOutput, error)

	// Dungeon floor variants
	CalculateFloorSuccessChance(
		ctx context.Context,
		input *CalculateFloorSuccessChanceInput,
	) (*CalculateFloorSuccessChanceOutput, error)
	GetFloorDeathRisk(ctx context.Context, input *GetFloorDeathRiskInput) (*GetFloorDeathRiskOutput, error)
	RollFloorRewards(ctx context.Context, input *RollFloorRewardsInput) (*RollFloorRewardsOutput, error)
	ResolveFloor(ctx context.Context, input *ResolveFloorInput) (*ResolveFloorOutput, error)
}
