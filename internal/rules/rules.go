// Package rules holds the engine's tuning tables as one immutable
// configuration value. A Store hands out snapshots and supports an explicit
// atomic-swap reload; nothing reads tuning data through a global.
package rules

import (
	"github.com/ironvale/guild-api/internal/entities"
)

// ChanceRules tunes the success chance calculation
type ChanceRules struct {
	// ExpectedStat is the primary stat a party is expected to field per
	// quest rank. Deviation from it moves the chance.
	ExpectedStat map[entities.Rank]float64 `yaml:"expected_stat"`

	// RankBonus is a fixed additive bonus per quest rank
	RankBonus map[entities.Rank]float64 `yaml:"rank_bonus"`

	PrimaryWeight   float64 `yaml:"primary_weight"`
	SecondaryWeight float64 `yaml:"secondary_weight"`
	LuckWeight      float64 `yaml:"luck_weight"`
	BaselineLuck    float64 `yaml:"baseline_luck"`

	// Base curve: ratio >= 1 uses OverBase + (ratio-1)*OverSlope,
	// ratio < 1 uses UnderBase + ratio*UnderSlope.
	OverBase   float64 `yaml:"over_base"`
	OverSlope  float64 `yaml:"over_slope"`
	UnderBase  float64 `yaml:"under_base"`
	UnderSlope float64 `yaml:"under_slope"`

	MinChance float64 `yaml:"min_chance"`
	MaxChance float64 `yaml:"max_chance"`
}

// ExpectedStatFor returns the expected primary stat for a rank, 0 for unknown
func (c ChanceRules) ExpectedStatFor(r entities.Rank) float64 {
	return c.ExpectedStat[r]
}

// InjuryRules holds the percentage stat-penalty multipliers per injury tier
type InjuryRules struct {
	FatiguedMultiplier float64 `yaml:"fatigued_multiplier"`
	InjuredMultiplier  float64 `yaml:"injured_multiplier"`
	WoundedMultiplier  float64 `yaml:"wounded_multiplier"`
}

// Multiplier returns the stat multiplier for an injury tier, 1.0 for healthy
func (i InjuryRules) Multiplier(s entities.InjuryState) float64 {
	switch s {
	case entities.InjuryFatigued:
		return i.FatiguedMultiplier
	case entities.InjuryInjured:
		return i.InjuredMultiplier
	case entities.InjuryWounded:
		return i.WoundedMultiplier
	default:
		return 1.0
	}
}

// DeathRules tunes failure death resolution
type DeathRules struct {
	// MaxPassiveReduction caps how much a defensive passive can shave off
	// the death chance.
	MaxPassiveReduction float64 `yaml:"max_passive_reduction"`

	// TankCover is the death chance reduction for non-tank members when a
	// tank is present.
	TankCover float64 `yaml:"tank_cover"`

	// ClericClasses are the classes whose presence activates a quest's
	// cleric protection.
	ClericClasses []entities.Class `yaml:"cleric_classes"`

	// EscapeArtistClass members at or above EscapeArtistMinLevel convert a
	// rolled death into an injury.
	EscapeArtistClass    entities.Class `yaml:"escape_artist_class"`
	EscapeArtistMinLevel int            `yaml:"escape_artist_min_level"`
}

// IsCleric reports whether the class counts as a cleric for protection
func (d DeathRules) IsCleric(c entities.Class) bool {
	for _, cc := range d.ClericClasses {
		if cc == c {
			return true
		}
	}
	return false
}

// RewardRules tunes reward payout and drop rolls
type RewardRules struct {
	FailGoldFraction float64 `yaml:"fail_gold_fraction"`
	FailXPFraction   float64 `yaml:"fail_xp_fraction"`
	DropChanceCap    float64 `yaml:"drop_chance_cap"`

	// LuckDropWeight converts luck above baseline into a drop multiplier
	LuckDropWeight float64 `yaml:"luck_drop_weight"`
}

// DungeonRules tunes multi-floor runs
type DungeonRules struct {
	FatiguePerFloor      float64 `yaml:"fatigue_per_floor"`
	MinFatigueMultiplier float64 `yaml:"min_fatigue_multiplier"`

	// DeathRiskStartFloor is the first floor where failure can kill
	DeathRiskStartFloor int `yaml:"death_risk_start_floor"`

	// FloorDeathChance is indexed from DeathRiskStartFloor; floors past the
	// end use the last entry.
	FloorDeathChance []float64 `yaml:"floor_death_chance"`

	DropMultiplier     float64 `yaml:"drop_multiplier"`
	CompletionBonusPct float64 `yaml:"completion_bonus_pct"`
}

// DeathChanceForFloor returns the death chance for a floor, 0 below the
// risk threshold
func (d DungeonRules) DeathChanceForFloor(floor int) float64 {
	if floor < d.DeathRiskStartFloor || len(d.FloorDeathChance) == 0 {
		return 0
	}
	idx := floor - d.DeathRiskStartFloor
	if idx >= len(d.FloorDeathChance) {
		idx = len(d.FloorDeathChance) - 1
	}
	return d.FloorDeathChance[idx]
}

// FatigueMultiplier returns the stat multiplier for a floor, floored at the
// configured minimum. Floor 1 is always 1.0.
func (d DungeonRules) FatigueMultiplier(floor int) float64 {
	if floor <= 1 {
		return 1.0
	}
	m := 1.0 - float64(floor-1)*d.FatiguePerFloor
	if m < d.MinFatigueMultiplier {
		return d.MinFatigueMultiplier
	}
	return m
}

// ArchetypeRules tunes the passive archetype bonuses
type ArchetypeRules struct {
	// MinPartySize gates archetype classification entirely
	MinPartySize int `yaml:"min_party_size"`

	PureWeight             float64 `yaml:"pure_weight"`
	FocusedPrimaryWeight   float64 `yaml:"focused_primary_weight"`
	FocusedSecondaryWeight float64 `yaml:"focused_secondary_weight"`
	BalancedWeight         float64 `yaml:"balanced_weight"`

	// VersatileBonus and DiverseBonus are fixed small bonuses applied across
	// all four category channels.
	VersatileBonus float64 `yaml:"versatile_bonus"`
	DiverseBonus   float64 `yaml:"diverse_bonus"`
}

// SynergyShape is the closed set of class composition rule shapes
type SynergyShape string

// Synergy rule shapes
const (
	ShapeMinCount      SynergyShape = "min_count"
	ShapeCombination   SynergyShape = "combination"
	ShapeUniqueClasses SynergyShape = "unique_classes"
)

// SynergyRule is one data-driven class composition bonus
type SynergyRule struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Priority int          `yaml:"priority"`
	Shape    SynergyShape `yaml:"shape"`

	// Classes and MinCount apply to min_count (>= MinCount heroes whose
	// class is in Classes) and unique_classes (>= MinCount distinct classes
	// present; Classes ignored).
	Classes  []entities.Class `yaml:"classes,omitempty"`
	MinCount int              `yaml:"min_count,omitempty"`

	// Groups applies to combination: one hero from each group
	Groups [][]entities.Class `yaml:"groups,omitempty"`

	Bonus entities.BonusVector `yaml:"bonus"`
}

// AffinityRules holds class-quest and stat-class affinity tables
type AffinityRules struct {
	ClassQuest map[entities.Class]map[entities.QuestKind]float64 `yaml:"class_quest"`
	StatClass  map[entities.Stat]map[entities.Class]float64      `yaml:"stat_class"`
}

// ClassQuestBonus returns the affinity of a class for a quest kind
func (a AffinityRules) ClassQuestBonus(c entities.Class, k entities.QuestKind) float64 {
	return a.ClassQuest[c][k]
}

// StatClassBonus returns the affinity of a class for a required stat
func (a AffinityRules) StatClassBonus(s entities.Stat, c entities.Class) float64 {
	return a.StatClass[s][c]
}

// RulesConfig is the complete immutable tuning table set.
// Treat values handed out by a Store as read-only.
type RulesConfig struct {
	Chance     ChanceRules                      `yaml:"chance"`
	Injury     InjuryRules                      `yaml:"injury"`
	Death      DeathRules                       `yaml:"death"`
	Rewards    RewardRules                      `yaml:"rewards"`
	Dungeon    DungeonRules                     `yaml:"dungeon"`
	Archetypes ArchetypeRules                   `yaml:"archetypes"`
	Synergies  []SynergyRule                    `yaml:"synergies"`
	Affinity   AffinityRules                    `yaml:"affinity"`
	Roles      map[entities.Class]entities.Role `yaml:"roles"`
}

// RoleOf returns the role tag for a class, RoleNone for unknown classes
func (c *RulesConfig) RoleOf(class entities.Class) entities.Role {
	return c.Roles[class]
}
