package entities

// Rank is the ordinal power tier for heroes and quests, D < C < B < A < S.
type Rank string

// Rank values
const (
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// Ordinal returns the rank's position, D=1 through S=5.
// Unknown ranks return 0 so callers can detect structurally invalid input.
func (r Rank) Ordinal() int {
	switch r {
	case RankD:
		return 1
	case RankC:
		return 2
	case RankB:
		return 3
	case RankA:
		return 4
	case RankS:
		return 5
	default:
		return 0
	}
}

// Ranks lists all ranks in ascending order
func Ranks() []Rank {
	return []Rank{RankD, RankC, RankB, RankA, RankS}
}

// Stat identifies one of the five hero attributes
type Stat string

// Stat values
const (
	StatStr  Stat = "str"
	StatDex  Stat = "dex"
	StatInt  Stat = "int"
	StatVit  Stat = "vit"
	StatLuck Stat = "luck"
)

// InjuryState is a hero's temporary debuff tier. Ordering matters:
// severity comparisons rely on the numeric values.
type InjuryState int

// Injury tiers, ascending severity
const (
	InjuryNone InjuryState = iota
	InjuryFatigued
	InjuryInjured
	InjuryWounded
)

// String returns the tier name
func (i InjuryState) String() string {
	switch i {
	case InjuryNone:
		return "none"
	case InjuryFatigued:
		return "fatigued"
	case InjuryInjured:
		return "injured"
	case InjuryWounded:
		return "wounded"
	default:
		return "unknown"
	}
}

// Reduced returns the tier lowered by n steps, floored at none
func (i InjuryState) Reduced(n int) InjuryState {
	r := i - InjuryState(n)
	if r < InjuryNone {
		return InjuryNone
	}
	return r
}

// PassiveCategory groups hero passives for archetype classification
type PassiveCategory string

// Passive categories
const (
	CategoryOffense PassiveCategory = "offense"
	CategoryDefense PassiveCategory = "defense"
	CategoryWealth  PassiveCategory = "wealth"
	CategorySpeed   PassiveCategory = "speed"
)

// Categories lists all passive categories in a stable order
func Categories() []PassiveCategory {
	return []PassiveCategory{CategoryOffense, CategoryDefense, CategoryWealth, CategorySpeed}
}

// PassiveKind is the closed set of passive ability effects
type PassiveKind string

// Passive kinds. Each kind belongs to one category; content data is expected
// to keep the pairing consistent.
const (
	PassiveBattleFury    PassiveKind = "battle_fury"    // offense: success contribution via archetype
	PassiveScholar       PassiveKind = "scholar"        // offense: xp gain bonus
	PassiveIronWill      PassiveKind = "iron_will"      // defense: death chance reduction
	PassiveBulwark       PassiveKind = "bulwark"        // defense: survival via archetype
	PassiveGoldFind      PassiveKind = "gold_find"      // wealth: gold reward bonus
	PassiveTreasureSense PassiveKind = "treasure_sense" // wealth: material drop luck bonus
	PassiveShadowStep    PassiveKind = "shadow_step"    // speed: chance to evade a rolled death
	PassiveFleetFoot     PassiveKind = "fleet_foot"     // speed: travel reduction via archetype
)

// Role is a class-derived tag used only in failure-mitigation rules
type Role string

// Roles
const (
	RoleNone   Role = ""
	RoleTank   Role = "tank"
	RoleHealer Role = "healer"
)

// Class identifies a hero class. The set is content-driven; unknown classes
// simply contribute no affinity or role behavior.
type Class string

// QuestKind partitions quests for class affinity lookups
type QuestKind string

// Quest kinds
const (
	QuestKindCombat      QuestKind = "combat"
	QuestKindExploration QuestKind = "exploration"
)
