package engine

import (
	"github.com/ironvale/guild-api/internal/entities"
)

// HeroStatLine is one hero's contribution to a stat total, for display
type HeroStatLine struct {
	HeroID     string
	Base       int
	Effective  int
	EquipBonus int
}

// PartyStats is the aggregated stat view of a party for one quest
type PartyStats struct {
	PrimaryTotal float64
	PrimaryAvg   float64
	SecondaryAvg map[entities.Stat]float64
	LuckAvg      float64
	PerHero      []HeroStatLine
}

// PassiveEffects is the aggregate of the party's passive abilities
type PassiveEffects struct {
	GoldBonus        float64
	XPBonus          float64
	MaterialBonus    float64
	DeathReduction   float64
	ShadowStepChance float64
}

// TriggeredSynergy is one active class composition rule, for display.
// The resolution math only uses the summed vector.
type TriggeredSynergy struct {
	ID       string
	Name     string
	Priority int
	Bonus    entities.BonusVector
}

// CalculateSuccessChanceInput holds the quest and party to evaluate
type CalculateSuccessChanceInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero
}

// CalculateSuccessChanceOutput is the clamped chance plus its stat breakdown
type CalculateSuccessChanceOutput struct {
	Chance float64
	Stats  *PartyStats
}

// ResolveInput holds the quest and party to resolve.
// PartyLuckBonus is an optional external drop-luck multiplier bonus.
type ResolveInput struct {
	Quest          *entities.Quest
	Heroes         []*entities.Hero
	PartyLuckBonus float64
}

// ResolveOutput carries the full outcome
type ResolveOutput struct {
	Result *entities.OutcomeResult
}

// CalculateSynergiesInput holds the party (and quest, for display context)
type CalculateSynergiesInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero
}

// CalculateSynergiesOutput lists triggered rules and the combined vector
type CalculateSynergiesOutput struct {
	Rules     []TriggeredSynergy
	Combined  entities.BonusVector
	Archetype entities.Archetype
}

// GetPartyPassiveEffectsInput holds the party
type GetPartyPassiveEffectsInput struct {
	Heroes []*entities.Hero
}

// GetPartyPassiveEffectsOutput carries the aggregated passive effects
type GetPartyPassiveEffectsOutput struct {
	Effects *PassiveEffects
}

// CalculateFloorSuccessChanceInput evaluates one dungeon floor
type CalculateFloorSuccessChanceInput struct {
	Quest  *entities.Quest
	Heroes []*entities.Hero
	Floor  int
}

// CalculateFloorSuccessChanceOutput is the floor chance and applied fatigue
type CalculateFloorSuccessChanceOutput struct {
	Chance            float64
	FatigueMultiplier float64
}

// GetFloorDeathRiskInput asks for the death risk on a floor
type GetFloorDeathRiskInput struct {
	Floor int
}

// GetFloorDeathRiskOutput reports the risk; Active is false below the
// configured threshold floor
type GetFloorDeathRiskOutput struct {
	DeathChance float64
	Active      bool
}

// RollFloorRewardsInput rolls one floor's bonus drops
type RollFloorRewardsInput struct {
	Quest          *entities.Quest
	Heroes         []*entities.Hero
	Floor          int
	PartyLuckBonus float64
}

// RollFloorRewardsOutput carries the granted drops
type RollFloorRewardsOutput struct {
	Rewards []entities.Reward
}

// ResolveFloorInput resolves one dungeon floor end to end
type ResolveFloorInput struct {
	Quest          *entities.Quest
	Heroes         []*entities.Hero
	Floor          int
	PartyLuckBonus float64
}

// ResolveFloorOutput carries the floor outcome
type ResolveFloorOutput struct {
	Outcome *entities.FloorOutcome
}
