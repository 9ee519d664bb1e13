package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/pkg/rng"
)

func calcChance(t *testing.T, quest *entities.Quest, heroes []*entities.Hero) float64 {
	t.Helper()

	e := newTestEngine(t, &rng.Fixed{V: 0.5})
	out, err := e.CalculateSuccessChance(context.Background(), &engine.CalculateSuccessChanceInput{
		Quest:  quest,
		Heroes: heroes,
	})
	require.NoError(t, err)
	return out.Chance
}

func TestCalculateSuccessChance_Baseline(t *testing.T) {
	// 4 rank-D heroes at the rank-minimum stat line, no equipment, no
	// passives, no synergy, matching required stat, no secondaries:
	// base 0.60 (ratio 1) + rank bonus 0.05, every deviation term zero.
	quest := &entities.Quest{ID: "q1", Rank: entities.RankD, RequiredStat: entities.StatStr}
	heroes := plainParty(4, entities.RankD, 10)

	chance := calcChance(t, quest, heroes)

	assert.InDelta(t, 0.65, chance, 1e-9)
	assert.GreaterOrEqual(t, chance, 0.60, "inside the documented D-rank baseline band")
	assert.LessOrEqual(t, chance, 0.70, "inside the documented D-rank baseline band")
}

func TestCalculateSuccessChance_Clamped(t *testing.T) {
	t.Run("upper clamp", func(t *testing.T) {
		quest := &entities.Quest{ID: "q1", Rank: entities.RankD, RequiredStat: entities.StatStr}
		heroes := plainParty(4, entities.RankS, 200)

		assert.InDelta(t, 0.98, calcChance(t, quest, heroes), 1e-9)
	})

	t.Run("lower clamp", func(t *testing.T) {
		quest := &entities.Quest{ID: "q1", Rank: entities.RankS, RequiredStat: entities.StatStr}
		heroes := plainParty(4, entities.RankD, 5)

		assert.InDelta(t, 0.15, calcChance(t, quest, heroes), 1e-9)
	})
}

func TestCalculateSuccessChance_UnderRankedStaysPossible(t *testing.T) {
	// D party against a C quest: reduced odds, never a hard gate
	quest := &entities.Quest{ID: "q1", Rank: entities.RankC, RequiredStat: entities.StatStr}
	heroes := plainParty(4, entities.RankD, 20)

	chance := calcChance(t, quest, heroes)

	// ratio 0.5: base 0.15 + 0.5*0.45 = 0.375, plus C rank bonus 0.04
	assert.InDelta(t, 0.415, chance, 1e-9)
}

func TestCalculateSuccessChance_Monotonicity(t *testing.T) {
	quest := &entities.Quest{
		ID:           "q1",
		Rank:         entities.RankC,
		RequiredStat: entities.StatStr,
		SecondaryStats: []entities.WeightedStat{
			{Stat: entities.StatVit, Weight: 1.0},
		},
	}

	base := calcChance(t, quest, plainParty(4, entities.RankC, 20))

	t.Run("raising primary stat never lowers the chance", func(t *testing.T) {
		heroes := plainParty(4, entities.RankC, 20)
		heroes[0].Stats.Str = 40
		assert.GreaterOrEqual(t, calcChance(t, quest, heroes), base)
	})

	t.Run("raising luck never lowers the chance", func(t *testing.T) {
		heroes := plainParty(4, entities.RankC, 20)
		heroes[0].Stats.Luck = 30
		assert.GreaterOrEqual(t, calcChance(t, quest, heroes), base)
	})

	t.Run("adding a synergy never lowers the chance", func(t *testing.T) {
		heroes := plainParty(4, entities.RankC, 20)
		for _, h := range heroes {
			h.Passive = &entities.Passive{
				Category:  entities.CategoryOffense,
				Kind:      entities.PassiveBattleFury,
				Magnitude: 0.01,
			}
		}
		assert.GreaterOrEqual(t, calcChance(t, quest, heroes), base)
	})
}

func TestCalculateSuccessChance_EmptyParty(t *testing.T) {
	quest := &entities.Quest{ID: "q1", Rank: entities.RankD, RequiredStat: entities.StatStr}

	assert.Zero(t, calcChance(t, quest, nil), "empty party yields zero, not an error")
}

func TestCalculateSuccessChance_InjuryPenaltyLowersStats(t *testing.T) {
	quest := &entities.Quest{ID: "q1", Rank: entities.RankC, RequiredStat: entities.StatStr}

	healthy := plainParty(4, entities.RankC, 20)
	wounded := plainParty(4, entities.RankC, 20)
	for _, h := range wounded {
		h.Injury = entities.InjuryWounded
	}

	assert.Less(t, calcChance(t, quest, wounded), calcChance(t, quest, healthy))
}

func TestCalculateSuccessChance_RangeProperty(t *testing.T) {
	// sweep a grid of parties; the clamp must hold everywhere
	quest := &entities.Quest{ID: "q1", Rank: entities.RankB, RequiredStat: entities.StatInt}

	for _, rank := range entities.Ranks() {
		for _, stat := range []int{0, 5, 35, 120, 400} {
			chance := calcChance(t, quest, plainParty(4, rank, stat))
			assert.GreaterOrEqual(t, chance, 0.15, "rank %s stat %d", rank, stat)
			assert.LessOrEqual(t, chance, 0.98, "rank %s stat %d", rank, stat)
		}
	}
}
