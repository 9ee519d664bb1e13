package rules

import (
	"github.com/ironvale/guild-api/internal/entities"
)

// Defaults returns the conservative baseline tuning tables. A YAML file can
// override any section; absent keys keep these values.
func Defaults() *RulesConfig {
	return &RulesConfig{
		Chance: ChanceRules{
			ExpectedStat: map[entities.Rank]float64{
				entities.RankD: 10,
				entities.RankC: 20,
				entities.RankB: 35,
				entities.RankA: 55,
				entities.RankS: 80,
			},
			RankBonus: map[entities.Rank]float64{
				entities.RankD: 0.05,
				entities.RankC: 0.04,
				entities.RankB: 0.03,
				entities.RankA: 0.02,
				entities.RankS: 0.00,
			},
			PrimaryWeight:   0.004,
			SecondaryWeight: 0.002,
			LuckWeight:      0.002,
			BaselineLuck:    10,
			OverBase:        0.60,
			OverSlope:       0.35,
			UnderBase:       0.15,
			UnderSlope:      0.45,
			MinChance:       0.15,
			MaxChance:       0.98,
		},
		Injury: InjuryRules{
			FatiguedMultiplier: 0.90,
			InjuredMultiplier:  0.75,
			WoundedMultiplier:  0.50,
		},
		Death: DeathRules{
			MaxPassiveReduction:  0.80,
			TankCover:            0.50,
			ClericClasses:        []entities.Class{"cleric", "priest"},
			EscapeArtistClass:    "rogue",
			EscapeArtistMinLevel: 5,
		},
		Rewards: RewardRules{
			FailGoldFraction: 0.20,
			FailXPFraction:   0.30,
			DropChanceCap:    0.95,
			LuckDropWeight:   0.01,
		},
		Dungeon: DungeonRules{
			FatiguePerFloor:      0.05,
			MinFatigueMultiplier: 0.50,
			DeathRiskStartFloor:  3,
			FloorDeathChance:     []float64{0.05, 0.08, 0.12, 0.18, 0.25},
			DropMultiplier:       1.25,
			CompletionBonusPct:   0.20,
		},
		Archetypes: ArchetypeRules{
			MinPartySize:           4,
			PureWeight:             1.00,
			FocusedPrimaryWeight:   0.75,
			FocusedSecondaryWeight: 0.35,
			BalancedWeight:         0.55,
			VersatileBonus:         0.02,
			DiverseBonus:           0.03,
		},
		Synergies: []SynergyRule{
			{
				ID:       "shield_wall",
				Name:     "Shield Wall",
				Priority: 10,
				Shape:    ShapeMinCount,
				Classes:  []entities.Class{"knight", "guardian"},
				MinCount: 2,
				Bonus: entities.BonusVector{
					Survival:        0.10,
					DeathProtection: true,
				},
			},
			{
				ID:       "vanguard_company",
				Name:     "Vanguard Company",
				Priority: 20,
				Shape:    ShapeCombination,
				Groups: [][]entities.Class{
					{"knight", "guardian"},
					{"cleric", "priest"},
					{"mage", "sorcerer"},
				},
				Bonus: entities.BonusVector{
					Success:  0.06,
					Survival: 0.04,
				},
			},
			{
				ID:       "jack_of_trades",
				Name:     "Jack of All Trades",
				Priority: 30,
				Shape:    ShapeUniqueClasses,
				MinCount: 4,
				Bonus: entities.BonusVector{
					Success: 0.03,
					Drop:    0.05,
				},
			},
			{
				ID:       "hunting_pack",
				Name:     "Hunting Pack",
				Priority: 40,
				Shape:    ShapeMinCount,
				Classes:  []entities.Class{"ranger", "rogue"},
				MinCount: 2,
				Bonus: entities.BonusVector{
					TravelReduction: 0.10,
					PerStat:         map[entities.Stat]float64{entities.StatDex: 0.03},
				},
			},
		},
		Affinity: AffinityRules{
			ClassQuest: map[entities.Class]map[entities.QuestKind]float64{
				"knight":   {entities.QuestKindCombat: 0.04, entities.QuestKindExploration: 0.00},
				"guardian": {entities.QuestKindCombat: 0.03, entities.QuestKindExploration: 0.00},
				"mage":     {entities.QuestKindCombat: 0.02, entities.QuestKindExploration: 0.02},
				"sorcerer": {entities.QuestKindCombat: 0.03, entities.QuestKindExploration: 0.01},
				"cleric":   {entities.QuestKindCombat: 0.01, entities.QuestKindExploration: 0.01},
				"priest":   {entities.QuestKindCombat: 0.00, entities.QuestKindExploration: 0.02},
				"ranger":   {entities.QuestKindCombat: 0.01, entities.QuestKindExploration: 0.04},
				"rogue":    {entities.QuestKindCombat: 0.01, entities.QuestKindExploration: 0.03},
			},
			StatClass: map[entities.Stat]map[entities.Class]float64{
				entities.StatStr: {"knight": 0.03, "guardian": 0.02},
				entities.StatDex: {"ranger": 0.03, "rogue": 0.03},
				entities.StatInt: {"mage": 0.03, "sorcerer": 0.03, "priest": 0.02},
				entities.StatVit: {"guardian": 0.03, "knight": 0.02},
			},
		},
		Roles: map[entities.Class]entities.Role{
			"knight":   entities.RoleTank,
			"guardian": entities.RoleTank,
			"cleric":   entities.RoleHealer,
			"priest":   entities.RoleHealer,
		},
	}
}
