package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/pkg/rng"
	"github.com/ironvale/guild-api/internal/rules"
)

func heroWithPassive(id string, cat entities.PassiveCategory, kind entities.PassiveKind) *entities.Hero {
	return &entities.Hero{
		ID:      id,
		Class:   "villager",
		Rank:    entities.RankD,
		Level:   1,
		Passive: &entities.Passive{Category: cat, Kind: kind, Magnitude: 0.05},
	}
}

func calcSynergies(t *testing.T, heroes []*entities.Hero) *engine.CalculateSynergiesOutput {
	t.Helper()

	e := newTestEngine(t, &rng.Fixed{V: 0.5})
	out, err := e.CalculateSynergies(context.Background(), &engine.CalculateSynergiesInput{
		Quest:  &entities.Quest{Rank: entities.RankD, RequiredStat: entities.StatStr},
		Heroes: heroes,
	})
	require.NoError(t, err)
	return out
}

func TestClassifyArchetype(t *testing.T) {
	offense := func(id string) *entities.Hero {
		return heroWithPassive(id, entities.CategoryOffense, entities.PassiveBattleFury)
	}
	defense := func(id string) *entities.Hero {
		return heroWithPassive(id, entities.CategoryDefense, entities.PassiveBulwark)
	}
	wealth := func(id string) *entities.Hero {
		return heroWithPassive(id, entities.CategoryWealth, entities.PassiveGoldFind)
	}
	speed := func(id string) *entities.Hero {
		return heroWithPassive(id, entities.CategorySpeed, entities.PassiveFleetFoot)
	}

	tests := []struct {
		name          string
		heroes        []*entities.Hero
		wantKind      entities.ArchetypeKind
		wantPrimary   entities.PassiveCategory
		wantSecondary entities.PassiveCategory
	}{
		{
			name:        "four offense is pure",
			heroes:      []*entities.Hero{offense("a"), offense("b"), offense("c"), offense("d")},
			wantKind:    entities.ArchetypePure,
			wantPrimary: entities.CategoryOffense,
		},
		{
			name:          "three one is focused",
			heroes:        []*entities.Hero{offense("a"), offense("b"), offense("c"), defense("d")},
			wantKind:      entities.ArchetypeFocused,
			wantPrimary:   entities.CategoryOffense,
			wantSecondary: entities.CategoryDefense,
		},
		{
			name:          "two two is balanced",
			heroes:        []*entities.Hero{offense("a"), offense("b"), defense("c"), defense("d")},
			wantKind:      entities.ArchetypeBalanced,
			wantPrimary:   entities.CategoryOffense,
			wantSecondary: entities.CategoryDefense,
		},
		{
			name:     "two one one is versatile",
			heroes:   []*entities.Hero{offense("a"), offense("b"), defense("c"), wealth("d")},
			wantKind: entities.ArchetypeVersatile,
		},
		{
			name:     "one of each is diverse",
			heroes:   []*entities.Hero{offense("a"), defense("b"), wealth("c"), speed("d")},
			wantKind: entities.ArchetypeDiverse,
		},
		{
			name:     "party below four is none unconditionally",
			heroes:   []*entities.Hero{offense("a"), offense("b"), offense("c")},
			wantKind: entities.ArchetypeNone,
		},
		{
			name:     "missing passives fall through to none",
			heroes:   []*entities.Hero{offense("a"), offense("b"), plainHero("c", entities.RankD, 10), plainHero("d", entities.RankD, 10)},
			wantKind: entities.ArchetypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := calcSynergies(t, tt.heroes)

			assert.Equal(t, tt.wantKind, out.Archetype.Kind)
			if tt.wantPrimary != "" {
				assert.Equal(t, tt.wantPrimary, out.Archetype.Primary)
			}
			if tt.wantSecondary != "" {
				assert.Equal(t, tt.wantSecondary, out.Archetype.Secondary)
			}
		})
	}
}

func TestArchetypeBonusWeights(t *testing.T) {
	cfg := rules.Defaults()

	t.Run("pure routes full weight onto the category channel", func(t *testing.T) {
		heroes := []*entities.Hero{
			heroWithPassive("a", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("b", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("c", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("d", entities.CategoryOffense, entities.PassiveBattleFury),
		}
		_, bonus := classifyArchetype(cfg, heroes)
		// 4 passives at 0.05, pure weight 1.0
		assert.InDelta(t, 0.20, bonus.Success, 1e-9)
		assert.Zero(t, bonus.Survival)
	})

	t.Run("focused weighs primary over secondary", func(t *testing.T) {
		heroes := []*entities.Hero{
			heroWithPassive("a", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("b", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("c", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("d", entities.CategoryDefense, entities.PassiveBulwark),
		}
		_, bonus := classifyArchetype(cfg, heroes)
		// primary: 0.75 * 0.15, secondary: 0.35 * 0.05
		assert.InDelta(t, 0.1125, bonus.Success, 1e-9)
		assert.InDelta(t, 0.0175, bonus.Survival, 1e-9)
		assert.Greater(t, bonus.Success, bonus.Survival)
	})

	t.Run("balanced weighs both channels equally", func(t *testing.T) {
		heroes := []*entities.Hero{
			heroWithPassive("a", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("b", entities.CategoryOffense, entities.PassiveBattleFury),
			heroWithPassive("c", entities.CategoryDefense, entities.PassiveBulwark),
			heroWithPassive("d", entities.CategoryDefense, entities.PassiveBulwark),
		}
		_, bonus := classifyArchetype(cfg, heroes)
		assert.InDelta(t, bonus.Success, bonus.Survival, 1e-9)
		assert.InDelta(t, 0.055, bonus.Success, 1e-9)
	})
}

func TestTriggeredRules(t *testing.T) {
	classed := func(id string, class entities.Class) *entities.Hero {
		return &entities.Hero{ID: id, Class: class, Rank: entities.RankD, Level: 1}
	}

	t.Run("min count shape", func(t *testing.T) {
		out := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "guardian"),
		})

		require.Len(t, out.Rules, 1)
		assert.Equal(t, "shield_wall", out.Rules[0].ID)
		assert.True(t, out.Combined.DeathProtection)
	})

	t.Run("combination shape needs one from each group", func(t *testing.T) {
		full := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "cleric"), classed("c", "mage"),
		})
		missing := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "cleric"),
		})

		assert.True(t, hasRule(full.Rules, "vanguard_company"))
		assert.False(t, hasRule(missing.Rules, "vanguard_company"))
	})

	t.Run("unique classes shape", func(t *testing.T) {
		out := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "mage"), classed("c", "ranger"), classed("d", "rogue"),
		})

		assert.True(t, hasRule(out.Rules, "jack_of_trades"))
	})

	t.Run("rules sort by priority for display", func(t *testing.T) {
		out := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "guardian"),
			classed("c", "ranger"), classed("d", "rogue"),
		})

		require.GreaterOrEqual(t, len(out.Rules), 2)
		for i := 1; i < len(out.Rules); i++ {
			assert.LessOrEqual(t, out.Rules[i-1].Priority, out.Rules[i].Priority)
		}
	})

	t.Run("numeric fields sum across rules", func(t *testing.T) {
		// shield_wall (survival 0.10) + hunting_pack (dex 0.03, travel 0.10)
		out := calcSynergies(t, []*entities.Hero{
			classed("a", "knight"), classed("b", "guardian"),
			classed("c", "ranger"), classed("d", "rogue"),
		})

		assert.InDelta(t, 0.10, out.Combined.Survival, 1e-9)
		assert.InDelta(t, 0.10, out.Combined.TravelReduction, 1e-9)
		assert.InDelta(t, 0.03, out.Combined.StatBonus(entities.StatDex), 1e-9)
	})
}

func hasRule(rules []engine.TriggeredSynergy, id string) bool {
	for _, r := range rules {
		if r.ID == id {
			return true
		}
	}
	return false
}
