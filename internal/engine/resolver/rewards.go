package resolver

import (
	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/rules"
)

// dropLuckMultiplier scales drop chances from party luck, the material-find
// passive, and any externally supplied party luck bonus
func dropLuckMultiplier(
	cfg *rules.RulesConfig,
	stats *engine.PartyStats,
	effects *engine.PassiveEffects,
	partyLuckBonus float64,
) float64 {
	m := 1.0 + (stats.LuckAvg-cfg.Chance.BaselineLuck)*cfg.Rewards.LuckDropWeight
	if m < 0 {
		m = 0
	}
	m *= 1.0 + effects.MaterialBonus
	m *= 1.0 + partyLuckBonus
	return m
}

// rollRewards rolls each possible reward independently. Per-item chance is
// the configured drop chance scaled by luck, synergy drop bonus, and the
// dungeon multiplier, capped at the configured ceiling.
func (r *resolver) rollRewards(
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	luckMult, dropBonus, dungeonMult float64,
) []entities.Reward {
	var out []entities.Reward
	for _, rc := range quest.PossibleRewards {
		chance := rc.DropChance * luckMult * dungeonMult * (1.0 + dropBonus)
		if chance > cfg.Rewards.DropChanceCap {
			chance = cfg.Rewards.DropChanceCap
		}
		if r.random.Float64() <= chance {
			out = append(out, entities.Reward{ItemID: rc.ItemID, Amount: rc.Amount})
		}
	}
	return out
}
