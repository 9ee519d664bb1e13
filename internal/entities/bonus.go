package entities

// BonusVector is the closed set of effect kinds a synergy or trait can
// contribute. Keeping it a struct instead of a string-keyed map means a new
// effect kind cannot silently no-op: Add must be extended or it won't carry.
type BonusVector struct {
	Success         float64          `json:"success,omitempty" yaml:"success,omitempty"`
	Survival        float64          `json:"survival,omitempty" yaml:"survival,omitempty"`
	Drop            float64          `json:"drop,omitempty" yaml:"drop,omitempty"`
	TravelReduction float64          `json:"travel_reduction,omitempty" yaml:"travel_reduction,omitempty"`
	Gold            float64          `json:"gold,omitempty" yaml:"gold,omitempty"`
	XP              float64          `json:"xp,omitempty" yaml:"xp,omitempty"`
	DeathProtection bool             `json:"death_protection,omitempty" yaml:"death_protection,omitempty"`
	PerStat         map[Stat]float64 `json:"per_stat,omitempty" yaml:"per_stat,omitempty"`
}

// Add combines two vectors: numeric fields sum, DeathProtection ORs,
// per-stat entries merge additively. Order-independent.
func (v BonusVector) Add(o BonusVector) BonusVector {
	out := BonusVector{
		Success:         v.Success + o.Success,
		Survival:        v.Survival + o.Survival,
		Drop:            v.Drop + o.Drop,
		TravelReduction: v.TravelReduction + o.TravelReduction,
		Gold:            v.Gold + o.Gold,
		XP:              v.XP + o.XP,
		DeathProtection: v.DeathProtection || o.DeathProtection,
	}
	if len(v.PerStat) > 0 || len(o.PerStat) > 0 {
		out.PerStat = make(map[Stat]float64, len(v.PerStat)+len(o.PerStat))
		for s, b := range v.PerStat {
			out.PerStat[s] += b
		}
		for s, b := range o.PerStat {
			out.PerStat[s] += b
		}
	}
	return out
}

// StatBonus returns the per-stat contribution for s, 0 when absent
func (v BonusVector) StatBonus(s Stat) float64 {
	return v.PerStat[s]
}

// ArchetypeKind names a party's passive-category count distribution
type ArchetypeKind string

// Archetype kinds
const (
	ArchetypePure      ArchetypeKind = "pure"      // 4-0-0-0
	ArchetypeFocused   ArchetypeKind = "focused"   // 3-1-0-0
	ArchetypeBalanced  ArchetypeKind = "balanced"  // 2-2-0-0
	ArchetypeVersatile ArchetypeKind = "versatile" // 2-1-1-0
	ArchetypeDiverse   ArchetypeKind = "diverse"   // 1-1-1-1
	ArchetypeNone      ArchetypeKind = "none"
)

// Archetype is the classified passive composition of a party.
// Primary/Secondary are set for pure (primary only), focused, and balanced.
type Archetype struct {
	Kind      ArchetypeKind   `json:"kind"`
	Primary   PassiveCategory `json:"primary,omitempty"`
	Secondary PassiveCategory `json:"secondary,omitempty"`
}
