package resolver

import (
	"math"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/rules"
)

// effectiveStat applies the injury penalty and floor fatigue to a hero's
// base stat, then adds the flat equipment bonus:
//
//	effective = floor(base * injuryPenalty * fatigue) + equipBonus
func (r *resolver) effectiveStat(
	cfg *rules.RulesConfig,
	hero *entities.Hero,
	stat entities.Stat,
	fatigue float64,
) (base, equip, effective int) {
	base = hero.Stat(stat)
	equip = r.equipment.Bonus(hero, stat)
	penalty := cfg.Injury.Multiplier(hero.Injury)
	effective = int(math.Floor(float64(base)*penalty*fatigue)) + equip
	return base, equip, effective
}

// aggregateStats builds the party stat view for a quest. The fatigue
// multiplier is 1.0 outside dungeons.
func (r *resolver) aggregateStats(
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	heroes []*entities.Hero,
	fatigue float64,
) *engine.PartyStats {
	ps := &engine.PartyStats{
		SecondaryAvg: make(map[entities.Stat]float64, len(quest.SecondaryStats)),
	}
	if len(heroes) == 0 {
		return ps
	}
	n := float64(len(heroes))

	for _, h := range heroes {
		base, equip, eff := r.effectiveStat(cfg, h, quest.RequiredStat, fatigue)
		ps.PrimaryTotal += float64(eff)
		ps.PerHero = append(ps.PerHero, engine.HeroStatLine{
			HeroID:     h.ID,
			Base:       base,
			EquipBonus: equip,
			Effective:  eff,
		})
	}
	ps.PrimaryAvg = ps.PrimaryTotal / n

	for _, sec := range quest.SecondaryStats {
		total := 0.0
		for _, h := range heroes {
			_, _, eff := r.effectiveStat(cfg, h, sec.Stat, fatigue)
			total += float64(eff)
		}
		ps.SecondaryAvg[sec.Stat] = total / n
	}

	luckTotal := 0.0
	for _, h := range heroes {
		_, _, eff := r.effectiveStat(cfg, h, entities.StatLuck, fatigue)
		luckTotal += float64(eff)
	}
	ps.LuckAvg = luckTotal / n

	return ps
}
