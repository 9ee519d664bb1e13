// Package entities defines the guild domain model shared across the engine,
// orchestrators, and repositories.
package entities

// Stats holds a hero's five base attributes
type Stats struct {
	Str  int `json:"str" yaml:"str"`
	Dex  int `json:"dex" yaml:"dex"`
	Int  int `json:"int" yaml:"int"`
	Vit  int `json:"vit" yaml:"vit"`
	Luck int `json:"luck" yaml:"luck"`
}

// Get returns the value for the given stat, 0 for unknown stats
func (s Stats) Get(stat Stat) int {
	switch stat {
	case StatStr:
		return s.Str
	case StatDex:
		return s.Dex
	case StatInt:
		return s.Int
	case StatVit:
		return s.Vit
	case StatLuck:
		return s.Luck
	default:
		return 0
	}
}

// Passive is a hero's passive ability
type Passive struct {
	Category  PassiveCategory `json:"category" yaml:"category"`
	Kind      PassiveKind     `json:"kind" yaml:"kind"`
	Magnitude float64         `json:"magnitude" yaml:"magnitude"`
}

// Hero is the partial view of a guild hero this engine consumes.
// Generation, leveling, and roster lifecycle live elsewhere; the engine only
// reads stats and writes the injury field in place as resolution output.
type Hero struct {
	ID      string      `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Class   Class       `json:"class" yaml:"class"`
	Rank    Rank        `json:"rank" yaml:"rank"`
	Level   int         `json:"level" yaml:"level"`
	Stats   Stats       `json:"stats" yaml:"stats"`
	Injury  InjuryState `json:"injury" yaml:"injury"`
	Passive *Passive    `json:"passive,omitempty" yaml:"passive,omitempty"`
}

// GetID returns the hero's ID
func (h *Hero) GetID() string {
	return h.ID
}

// GetType returns the entity type for rpg-toolkit
func (h *Hero) GetType() string {
	return "hero"
}

// Stat returns the hero's base value for the given stat
func (h *Hero) Stat(s Stat) int {
	return h.Stats.Get(s)
}

// ApplyInjury raises the hero's injury to at least the given severity.
// Severity never downgrades: a later fatigued application on a wounded hero
// leaves the hero wounded.
func (h *Hero) ApplyInjury(severity InjuryState) InjuryState {
	if severity > h.Injury {
		h.Injury = severity
	}
	return h.Injury
}
