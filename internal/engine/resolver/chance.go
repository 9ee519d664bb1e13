package resolver

import (
	"context"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/rules"
)

// successChance is the full contributor pipeline. Pure apart from the roster
// lookup; the result is clamped to [MinChance, MaxChance]. An empty party
// yields 0, not an error.
func (r *resolver) successChance(
	ctx context.Context,
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	heroes []*entities.Hero,
	fatigue float64,
) (float64, *engine.PartyStats, error) {
	stats := r.aggregateStats(cfg, quest, heroes, fatigue)
	if len(heroes) == 0 {
		return 0, stats, nil
	}

	// 1. rank ratio base curve. Under-ranked attempts stay possible at
	// reduced odds; this is a risk lever, not a gate.
	questOrd := quest.Rank.Ordinal()
	if questOrd == 0 {
		// callers validate quests structurally; an unranked quest
		// degrades to rank D rather than dividing by zero
		questOrd = 1
	}
	rankTotal := 0
	for _, h := range heroes {
		rankTotal += h.Rank.Ordinal()
	}
	ratio := float64(rankTotal) / float64(len(heroes)) / float64(questOrd)

	var chance float64
	if ratio >= 1 {
		chance = cfg.Chance.OverBase + (ratio-1)*cfg.Chance.OverSlope
		if chance > cfg.Chance.MaxChance {
			chance = cfg.Chance.MaxChance
		}
	} else {
		chance = cfg.Chance.UnderBase + ratio*cfg.Chance.UnderSlope
	}

	// 2. fixed per-rank bonus
	chance += cfg.Chance.RankBonus[quest.Rank]

	// 3. primary stat deviation from the rank expectation
	expected := cfg.Chance.ExpectedStatFor(quest.Rank)
	chance += (stats.PrimaryAvg - expected) * cfg.Chance.PrimaryWeight

	// 4. secondary stats against a softened expectation
	for _, sec := range quest.SecondaryStats {
		avg := stats.SecondaryAvg[sec.Stat]
		chance += (avg - 0.7*expected) * cfg.Chance.SecondaryWeight * sec.Weight
	}

	// 5. luck above baseline
	chance += (stats.LuckAvg - cfg.Chance.BaselineLuck) * cfg.Chance.LuckWeight

	// 6. synergy bonuses, stat-specific part restricted to the required stat
	syn := r.combinedSynergy(cfg, heroes)
	chance += syn.Success + syn.StatBonus(quest.RequiredStat)

	// 7. class affinity, averaged so uniform-class stacking does not
	// multiply unfairly
	kind := quest.Kind()
	affinity := 0.0
	for _, h := range heroes {
		affinity += cfg.Affinity.ClassQuestBonus(h.Class, kind)
		affinity += cfg.Affinity.StatClassBonus(quest.RequiredStat, h.Class)
	}
	chance += affinity / float64(len(heroes))

	// 8. registered party trait bonus
	party, err := r.roster.FindPartyByMembers(ctx, heroes)
	if err != nil {
		return 0, nil, errors.Wrap(err, "party lookup failed")
	}
	if party != nil {
		traits, err := r.roster.QuestBonuses(ctx, party, quest)
		if err != nil {
			return 0, nil, errors.Wrap(err, "party trait lookup failed")
		}
		chance += traits.Success + traits.StatBonus(quest.RequiredStat)
	}

	// 9. clamp
	if chance < cfg.Chance.MinChance {
		chance = cfg.Chance.MinChance
	}
	if chance > cfg.Chance.MaxChance {
		chance = cfg.Chance.MaxChance
	}
	return chance, stats, nil
}
