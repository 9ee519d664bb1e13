package resolver

import (
	"context"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
)

// CalculateFloorSuccessChance evaluates one dungeon floor with its fatigue
// multiplier applied to all party stats
func (r *resolver) CalculateFloorSuccessChance(
	ctx context.Context,
	input *engine.CalculateFloorSuccessChanceInput,
) (*engine.CalculateFloorSuccessChanceOutput, error) {
	cfg := r.rules.Snapshot()
	fatigue := cfg.Dungeon.FatigueMultiplier(input.Floor)

	chance, _, err := r.successChance(ctx, cfg, input.Quest, input.Heroes, fatigue)
	if err != nil {
		return nil, err
	}

	return &engine.CalculateFloorSuccessChanceOutput{
		Chance:            chance,
		FatigueMultiplier: fatigue,
	}, nil
}

// GetFloorDeathRisk reports the death chance for a floor. Risk only
// activates at the configured threshold floor.
func (r *resolver) GetFloorDeathRisk(
	_ context.Context,
	input *engine.GetFloorDeathRiskInput,
) (*engine.GetFloorDeathRiskOutput, error) {
	cfg := r.rules.Snapshot()
	chance := cfg.Dungeon.DeathChanceForFloor(input.Floor)

	return &engine.GetFloorDeathRiskOutput{
		DeathChance: chance,
		Active:      chance > 0,
	}, nil
}

// RollFloorRewards rolls one floor's bonus drops with the dungeon drop
// multiplier applied
func (r *resolver) RollFloorRewards(
	ctx context.Context,
	input *engine.RollFloorRewardsInput,
) (*engine.RollFloorRewardsOutput, error) {
	cfg := r.rules.Snapshot()
	fatigue := cfg.Dungeon.FatigueMultiplier(input.Floor)

	stats := r.aggregateStats(cfg, input.Quest, input.Heroes, fatigue)
	effects := partyPassiveEffects(cfg, input.Heroes)
	syn := r.combinedSynergy(cfg, input.Heroes)

	luckMult := dropLuckMultiplier(cfg, stats, effects, input.PartyLuckBonus)
	rewards := r.rollRewards(cfg, input.Quest, luckMult, syn.Drop, cfg.Dungeon.DropMultiplier)

	return &engine.RollFloorRewardsOutput{Rewards: rewards}, nil
}

// ResolveFloor resolves one dungeon floor end to end
func (r *resolver) ResolveFloor(
	ctx context.Context,
	input *engine.ResolveFloorInput,
) (*engine.ResolveFloorOutput, error) {
	cfg := r.rules.Snapshot()

	result, err := r.resolve(ctx, cfg, input.Quest, input.Heroes, input.PartyLuckBonus, input.Floor)
	if err != nil {
		return nil, err
	}

	return &engine.ResolveFloorOutput{
		Outcome: &entities.FloorOutcome{
			Floor:   input.Floor,
			Cleared: result.Success,
			Result:  *result,
		},
	}, nil
}
