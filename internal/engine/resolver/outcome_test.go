package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ironvale/guild-api/internal/clients/combat"
	combatmock "github.com/ironvale/guild-api/internal/clients/combat/mock"
	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/pkg/rng"
	"github.com/ironvale/guild-api/internal/rules"
)

func questD(gold, xp int) *entities.Quest {
	return &entities.Quest{
		ID:           "quest-1",
		Rank:         entities.RankD,
		RequiredStat: entities.StatStr,
		GoldReward:   gold,
		XPReward:     xp,
	}
}

func resolveWith(t *testing.T, random rng.Source, quest *entities.Quest, heroes []*entities.Hero) *entities.OutcomeResult {
	t.Helper()

	e := newTestEngine(t, random)
	out, err := e.Resolve(context.Background(), &engine.ResolveInput{Quest: quest, Heroes: heroes})
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	return out.Result
}

func TestResolve_SuccessRewards(t *testing.T) {
	heroes := plainParty(4, entities.RankD, 10)
	heroes[0].Passive = &entities.Passive{Category: entities.CategoryWealth, Kind: entities.PassiveGoldFind, Magnitude: 0.10}
	heroes[1].Passive = &entities.Passive{Category: entities.CategoryOffense, Kind: entities.PassiveScholar, Magnitude: 0.10}

	result := resolveWith(t, &rng.Fixed{V: 0.10}, questD(100, 50), heroes)

	assert.True(t, result.Success)
	assert.Equal(t, 110, result.Gold)
	assert.Equal(t, 55, result.XP)
	assert.Empty(t, result.Deaths)
	assert.Empty(t, result.Injuries)
}

func TestResolve_FailureConsolation(t *testing.T) {
	heroes := plainParty(4, entities.RankD, 10)

	result := resolveWith(t, &rng.Fixed{V: 0.99}, questD(100, 50), heroes)

	assert.False(t, result.Success)
	assert.Equal(t, 20, result.Gold)
	assert.Equal(t, 15, result.XP)
	assert.Empty(t, result.Deaths)
	assert.Empty(t, result.Injuries)
}

func TestResolve_InjuryOnlyFailure(t *testing.T) {
	heroes := plainParty(4, entities.RankD, 10)
	quest := questD(100, 50)
	quest.InjuryOnly = true

	result := resolveWith(t, &rng.Fixed{V: 0.99}, quest, heroes)

	assert.False(t, result.Success)
	assert.Empty(t, result.Deaths)
	require.Len(t, result.Injuries, 4)
	for _, inj := range result.Injuries {
		assert.Equal(t, entities.InjuryInjured, inj.Severity)
	}
	for _, h := range heroes {
		assert.Equal(t, entities.InjuryInjured, h.Injury)
	}
}

func TestResolve_DeathRolls(t *testing.T) {
	quest := questD(100, 50)
	quest.CanKill = true
	quest.DeathChance = 0.50

	t.Run("per hero draws decide deaths", func(t *testing.T) {
		heroes := plainParty(2, entities.RankD, 10)
		// fail the quest, kill the first hero, spare the second
		random := &rng.Sequence{Values: []float64{0.99, 0.30, 0.90}}

		result := resolveWith(t, random, quest, heroes)

		assert.Equal(t, []string{"a"}, result.Deaths)
		assert.Empty(t, result.Injuries)
		assert.Equal(t, entities.InjuryNone, heroes[1].Injury)
	})

	t.Run("iron will reduces the hero's own chance", func(t *testing.T) {
		heroes := plainParty(2, entities.RankD, 10)
		heroes[0].Passive = &entities.Passive{Category: entities.CategoryDefense, Kind: entities.PassiveIronWill, Magnitude: 0.50}
		// 0.30 beats the reduced 0.25 for the first hero, kills the second
		random := &rng.Sequence{Values: []float64{0.99, 0.30, 0.30}}

		result := resolveWith(t, random, quest, heroes)

		assert.Equal(t, []string{"b"}, result.Deaths)
	})

	t.Run("tank cover halves everyone else's chance", func(t *testing.T) {
		heroes := plainParty(2, entities.RankD, 10)
		heroes[0].Class = "knight"
		// 0.30 kills the uncovered tank, covered hero needs only beat 0.25
		random := &rng.Sequence{Values: []float64{0.99, 0.30, 0.30}}

		result := resolveWith(t, random, quest, heroes)

		assert.Equal(t, []string{"a"}, result.Deaths)
		assert.Empty(t, result.Injuries)
	})
}

func TestResolve_DeathConversions(t *testing.T) {
	lethalQuest := func() *entities.Quest {
		q := questD(100, 50)
		q.CanKill = true
		q.DeathChance = 0.50
		return q
	}

	t.Run("cleric protection converts every death", func(t *testing.T) {
		quest := lethalQuest()
		quest.ClericProtection = true
		heroes := plainParty(3, entities.RankD, 10)
		heroes[0].Class = "cleric"
		// fail, then roll a death for every hero
		random := &rng.Sequence{Values: []float64{0.99, 0.0}}

		result := resolveWith(t, random, quest, heroes)

		assert.Empty(t, result.Deaths)
		require.Len(t, result.Injuries, 3)
		for _, inj := range result.Injuries {
			assert.Equal(t, entities.InjuryWounded, inj.Severity)
		}
	})

	t.Run("synergy death protection converts", func(t *testing.T) {
		heroes := plainParty(4, entities.RankD, 10)
		heroes[0].Class = "knight"
		heroes[1].Class = "guardian"
		random := &rng.Sequence{Values: []float64{0.99, 0.0}}

		result := resolveWith(t, random, lethalQuest(), heroes)

		assert.Empty(t, result.Deaths)
		assert.Len(t, result.Injuries, 4)
	})

	t.Run("escape artist needs the minimum level", func(t *testing.T) {
		veteran := plainHero("vet", entities.RankD, 10)
		veteran.Class = "rogue"
		veteran.Level = 5
		novice := plainHero("nov", entities.RankD, 10)
		novice.Class = "rogue"
		novice.Level = 4
		random := &rng.Sequence{Values: []float64{0.99, 0.0}}

		result := resolveWith(t, random, lethalQuest(), []*entities.Hero{veteran, novice})

		assert.Equal(t, []string{"nov"}, result.Deaths)
		require.Len(t, result.Injuries, 1)
		assert.Equal(t, "vet", result.Injuries[0].HeroID)
		assert.Equal(t, entities.InjuryWounded, result.Injuries[0].Severity)
	})

	t.Run("shadow step evades on its own draw", func(t *testing.T) {
		hero := plainHero("a", entities.RankD, 10)
		hero.Passive = &entities.Passive{Category: entities.CategorySpeed, Kind: entities.PassiveShadowStep, Magnitude: 0.60}

		// fail, death rolled, evasion draw under the magnitude
		evaded := resolveWith(t, &rng.Sequence{Values: []float64{0.99, 0.0, 0.50}},
			lethalQuest(), []*entities.Hero{hero})
		assert.Empty(t, evaded.Deaths)
		assert.Len(t, evaded.Injuries, 1)

		unlucky := plainHero("b", entities.RankD, 10)
		unlucky.Passive = &entities.Passive{Category: entities.CategorySpeed, Kind: entities.PassiveShadowStep, Magnitude: 0.60}
		died := resolveWith(t, &rng.Sequence{Values: []float64{0.99, 0.0, 0.70}},
			lethalQuest(), []*entities.Hero{unlucky})
		assert.Equal(t, []string{"b"}, died.Deaths)
	})
}

func TestApplyGroupInjuries(t *testing.T) {
	cfg := rules.Defaults()

	newResolver := func(t *testing.T) *resolver {
		t.Helper()
		e := newTestEngine(t, &rng.Fixed{V: 0.5})
		r, ok := e.(*resolver)
		require.True(t, ok)
		return r
	}

	classed := func(id string, class entities.Class) *entities.Hero {
		return &entities.Hero{ID: id, Class: class, Rank: entities.RankD, Level: 1}
	}

	t.Run("no roles means everyone takes the base severity", func(t *testing.T) {
		heroes := []*entities.Hero{classed("a", "villager"), classed("b", "villager")}
		result := &entities.OutcomeResult{}

		newResolver(t).applyGroupInjuries(cfg, heroes, entities.InjuryInjured, result)

		require.Len(t, result.Injuries, 2)
		assert.Equal(t, entities.InjuryInjured, heroes[0].Injury)
		assert.Equal(t, entities.InjuryInjured, heroes[1].Injury)
	})

	t.Run("healer eases everyone one tier", func(t *testing.T) {
		heroes := []*entities.Hero{classed("a", "villager"), classed("b", "cleric")}
		result := &entities.OutcomeResult{}

		newResolver(t).applyGroupInjuries(cfg, heroes, entities.InjuryInjured, result)

		assert.Equal(t, entities.InjuryFatigued, heroes[0].Injury)
		assert.Equal(t, entities.InjuryFatigued, heroes[1].Injury)
	})

	t.Run("tank absorbs the worst hit while the healer eases the rest", func(t *testing.T) {
		tank := classed("tank", "knight")
		healer := classed("healer", "cleric")
		result := &entities.OutcomeResult{}

		newResolver(t).applyGroupInjuries(cfg, []*entities.Hero{tank, healer}, entities.InjuryWounded, result)

		assert.Equal(t, entities.InjuryWounded, tank.Injury)
		assert.Equal(t, entities.InjuryFatigued, healer.Injury)
	})

	t.Run("fully healed hits are not recorded", func(t *testing.T) {
		heroes := []*entities.Hero{classed("a", "villager"), classed("b", "cleric")}
		result := &entities.OutcomeResult{}

		newResolver(t).applyGroupInjuries(cfg, heroes, entities.InjuryFatigued, result)

		assert.Empty(t, result.Injuries)
		assert.Equal(t, entities.InjuryNone, heroes[0].Injury)
	})
}

func TestResolve_Combat(t *testing.T) {
	combatQuest := func() *entities.Quest {
		q := questD(100, 50)
		q.Combat = true
		return q
	}

	newCombatEngine := func(t *testing.T, client combat.Client) engine.Engine {
		t.Helper()
		e, err := New(&Config{
			Rules:  rules.NewStore(nil),
			Random: &rng.Fixed{V: 0.5},
			Combat: client,
		})
		require.NoError(t, err)
		return e
	}

	t.Run("victory pays full rewards and records the log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := combatmock.NewMockClient(ctrl)
		client.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(&combat.SimulateOutput{
			LogID:   "log-1",
			Success: true,
			Combatants: []combat.CombatantResult{
				{HeroID: "a", Alive: true},
				{HeroID: "b", Alive: true},
			},
		}, nil)

		heroes := plainParty(2, entities.RankD, 10)
		out, err := newCombatEngine(t, client).Resolve(context.Background(), &engine.ResolveInput{
			Quest:  combatQuest(),
			Heroes: heroes,
		})
		require.NoError(t, err)

		assert.True(t, out.Result.Success)
		assert.Equal(t, "log-1", out.Result.CombatLogID)
		assert.Equal(t, 100, out.Result.Gold)
		assert.Equal(t, 50, out.Result.XP)
		assert.Empty(t, out.Result.Deaths)
	})

	t.Run("defeat kills the fallen and injures survivors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := combatmock.NewMockClient(ctrl)
		client.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(&combat.SimulateOutput{
			LogID:   "log-2",
			Success: false,
			Combatants: []combat.CombatantResult{
				{HeroID: "a", Alive: false},
				{HeroID: "b", Alive: true},
			},
		}, nil)

		heroes := plainParty(2, entities.RankD, 10)
		out, err := newCombatEngine(t, client).Resolve(context.Background(), &engine.ResolveInput{
			Quest:  combatQuest(),
			Heroes: heroes,
		})
		require.NoError(t, err)

		assert.False(t, out.Result.Success)
		assert.Equal(t, []string{"a"}, out.Result.Deaths)
		require.Len(t, out.Result.Injuries, 1)
		assert.Equal(t, "b", out.Result.Injuries[0].HeroID)
		assert.Equal(t, entities.InjuryInjured, out.Result.Injuries[0].Severity)
		assert.Equal(t, 20, out.Result.Gold)
		assert.Equal(t, 15, out.Result.XP)
	})

	t.Run("simulator errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := combatmock.NewMockClient(ctrl)
		client.EXPECT().Simulate(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		_, err := newCombatEngine(t, client).Resolve(context.Background(), &engine.ResolveInput{
			Quest:  combatQuest(),
			Heroes: plainParty(2, entities.RankD, 10),
		})
		assert.Error(t, err)
	})
}
