package entities

// WeightedStat declares a secondary stat requirement and its weight
type WeightedStat struct {
	Stat   Stat    `json:"stat" yaml:"stat"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// RewardChance is one possible bonus reward with its base drop chance
type RewardChance struct {
	ItemID     string  `json:"item_id" yaml:"item_id"`
	Amount     int     `json:"amount" yaml:"amount"`
	DropChance float64 `json:"drop_chance" yaml:"drop_chance"`
}

// Quest describes one dispatchable job. Quests are created and phase-advanced
// by the world clock layer; the engine is handed one per completed
// execute-phase (or per dungeon floor).
type Quest struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Rank           Rank           `json:"rank" yaml:"rank"`
	RequiredStat   Stat           `json:"required_stat" yaml:"required_stat"`
	SecondaryStats []WeightedStat `json:"secondary_stats,omitempty" yaml:"secondary_stats,omitempty"`

	Combat           bool    `json:"combat" yaml:"combat"`
	CanKill          bool    `json:"can_kill" yaml:"can_kill"`
	InjuryOnly       bool    `json:"injury_only" yaml:"injury_only"`
	DeathChance      float64 `json:"death_chance" yaml:"death_chance"`
	ClericProtection bool    `json:"cleric_protection" yaml:"cleric_protection"`

	IsDungeon  bool `json:"is_dungeon" yaml:"is_dungeon"`
	FloorCount int  `json:"floor_count,omitempty" yaml:"floor_count,omitempty"`

	GoldReward      int            `json:"gold_reward" yaml:"gold_reward"`
	XPReward        int            `json:"xp_reward" yaml:"xp_reward"`
	PossibleRewards []RewardChance `json:"possible_rewards,omitempty" yaml:"possible_rewards,omitempty"`
}

// GetID returns the quest's ID
func (q *Quest) GetID() string {
	return q.ID
}

// GetType returns the entity type for rpg-toolkit
func (q *Quest) GetType() string {
	return "quest"
}

// Kind returns the affinity partition for this quest
func (q *Quest) Kind() QuestKind {
	if q.Combat {
		return QuestKindCombat
	}
	return QuestKindExploration
}

// Party is a registered, named grouping of heroes. Parties are owned by the
// roster layer; the engine only looks one up to apply its trait bonuses.
type Party struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	HeroIDs []string `json:"hero_ids"`
}

// GetID returns the party's ID
func (p *Party) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *Party) GetType() string {
	return "party"
}
