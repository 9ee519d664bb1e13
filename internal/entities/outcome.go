package entities

// Reward is one granted bonus item
type Reward struct {
	ItemID string `json:"item_id"`
	Amount int    `json:"amount"`
}

// HeroInjury records an injury applied during resolution
type HeroInjury struct {
	HeroID   string      `json:"hero_id"`
	Severity InjuryState `json:"severity"`
}

// OutcomeResult is the full consequence of one resolution call.
// A hero appears in at most one of Deaths or Injuries.
type OutcomeResult struct {
	Success      bool         `json:"success"`
	Chance       float64      `json:"chance"`
	Roll         float64      `json:"roll"`
	Gold         int          `json:"gold"`
	XP           int          `json:"xp"`
	BonusRewards []Reward     `json:"bonus_rewards,omitempty"`
	Deaths       []string     `json:"deaths,omitempty"`
	Injuries     []HeroInjury `json:"injuries,omitempty"`

	// CombatLogID references the combat simulator transcript for
	// combat-flagged quests, empty otherwise.
	CombatLogID string `json:"combat_log_id,omitempty"`
}
