package resolver

import (
	"context"
	"math"

	"github.com/ironvale/guild-api/internal/clients/combat"
	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/rules"
)

// Resolve rolls the outcome for one completed execute-phase
func (r *resolver) Resolve(ctx context.Context, input *engine.ResolveInput) (*engine.ResolveOutput, error) {
	cfg := r.rules.Snapshot()

	result, err := r.resolve(ctx, cfg, input.Quest, input.Heroes, input.PartyLuckBonus, 0)
	if err != nil {
		return nil, err
	}
	return &engine.ResolveOutput{Result: result}, nil
}

// resolve is the shared resolution path. floor is 0 outside dungeons;
// inside a dungeon it selects fatigue, drop multiplier, and the floor death
// table.
func (r *resolver) resolve(
	ctx context.Context,
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	heroes []*entities.Hero,
	partyLuckBonus float64,
	floor int,
) (*entities.OutcomeResult, error) {
	fatigue := 1.0
	dungeonMult := 1.0
	deathChance := quest.DeathChance
	lethal := quest.CanKill && quest.DeathChance > 0
	injuryOnly := quest.InjuryOnly
	if floor > 0 {
		fatigue = cfg.Dungeon.FatigueMultiplier(floor)
		dungeonMult = cfg.Dungeon.DropMultiplier
		deathChance = cfg.Dungeon.DeathChanceForFloor(floor)
		lethal = deathChance > 0
		injuryOnly = !lethal
	}

	chance, stats, err := r.successChance(ctx, cfg, quest, heroes, fatigue)
	if err != nil {
		return nil, err
	}

	result := &entities.OutcomeResult{Chance: chance}
	if len(heroes) == 0 {
		return result, nil
	}

	syn := r.combinedSynergy(cfg, heroes)
	effects := partyPassiveEffects(cfg, heroes)

	if quest.Combat {
		return r.resolveCombat(ctx, cfg, quest, heroes, result, stats, syn, effects, partyLuckBonus, dungeonMult)
	}

	roll := r.random.Float64()
	result.Roll = roll
	if roll <= chance {
		result.Success = true
		r.grantSuccessRewards(cfg, quest, result, stats, syn, effects, partyLuckBonus, dungeonMult)
		return result, nil
	}

	grantFailureRewards(cfg, quest, result)
	r.applyFailureConsequences(cfg, quest, heroes, result, syn, deathChance, lethal, injuryOnly)
	return result, nil
}

// grantSuccessRewards pays out gold, xp, and independent bonus drop rolls
func (r *resolver) grantSuccessRewards(
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	result *entities.OutcomeResult,
	stats *engine.PartyStats,
	syn entities.BonusVector,
	effects *engine.PassiveEffects,
	partyLuckBonus, dungeonMult float64,
) {
	result.Gold = int(math.Round(float64(quest.GoldReward) * (1.0 + effects.GoldBonus + syn.Gold)))
	result.XP = int(math.Round(float64(quest.XPReward) * (1.0 + effects.XPBonus + syn.XP)))

	luckMult := dropLuckMultiplier(cfg, stats, effects, partyLuckBonus)
	result.BonusRewards = r.rollRewards(cfg, quest, luckMult, syn.Drop, dungeonMult)
}

// grantFailureRewards pays the fixed consolation fractions
func grantFailureRewards(cfg *rules.RulesConfig, quest *entities.Quest, result *entities.OutcomeResult) {
	result.Gold = int(float64(quest.GoldReward) * cfg.Rewards.FailGoldFraction)
	result.XP = int(float64(quest.XPReward) * cfg.Rewards.FailXPFraction)
}

// applyFailureConsequences resolves deaths and injuries after a failed roll.
// Each hero ends up in at most one of Deaths or Injuries.
func (r *resolver) applyFailureConsequences(
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	heroes []*entities.Hero,
	result *entities.OutcomeResult,
	syn entities.BonusVector,
	deathChance float64,
	lethal, injuryOnly bool,
) {
	tankPresent := false
	clericPresent := false
	for _, h := range heroes {
		if cfg.RoleOf(h.Class) == entities.RoleTank {
			tankPresent = true
		}
		if cfg.Death.IsCleric(h.Class) {
			clericPresent = true
		}
	}

	switch {
	case lethal && deathChance > 0:
		for _, h := range heroes {
			ch := deathChance * (1.0 - heroDeathReduction(cfg, h))
			if tankPresent && cfg.RoleOf(h.Class) != entities.RoleTank {
				ch *= 1.0 - cfg.Death.TankCover
			}
			if r.random.Float64() > ch {
				continue
			}

			// death rolled; conversions take it down to an injury
			converted := false
			switch {
			case quest.ClericProtection && clericPresent:
				converted = true
			case syn.DeathProtection:
				converted = true
			case h.Class == cfg.Death.EscapeArtistClass && h.Level >= cfg.Death.EscapeArtistMinLevel:
				converted = true
			default:
				if sc := heroShadowStepChance(h); sc > 0 && r.random.Float64() <= sc {
					converted = true
				}
			}

			if converted {
				h.ApplyInjury(entities.InjuryWounded)
				result.Injuries = append(result.Injuries, entities.HeroInjury{
					HeroID:   h.ID,
					Severity: h.Injury,
				})
			} else {
				result.Deaths = append(result.Deaths, h.ID)
			}
		}

	case injuryOnly:
		r.applyGroupInjuries(cfg, heroes, entities.InjuryInjured, result)
	}
}

// applyGroupInjuries hands every participant the base severity, then adjusts
// by role: a healer eases everyone one tier, and a tank absorbs the worst
// incoming hit among the others, taking that severity itself.
func (r *resolver) applyGroupInjuries(
	cfg *rules.RulesConfig,
	heroes []*entities.Hero,
	base entities.InjuryState,
	result *entities.OutcomeResult,
) {
	sev := make([]entities.InjuryState, len(heroes))
	for i := range sev {
		sev[i] = base
	}

	tankIdx := -1
	healerPresent := false
	for i, h := range heroes {
		switch cfg.RoleOf(h.Class) {
		case entities.RoleTank:
			if tankIdx < 0 {
				tankIdx = i
			}
		case entities.RoleHealer:
			healerPresent = true
		}
	}

	if healerPresent {
		for i := range sev {
			sev[i] = sev[i].Reduced(1)
		}
	}

	if tankIdx >= 0 {
		// absorption acts on the incoming hit, before healing
		absorbIdx := -1
		for i := range heroes {
			if i != tankIdx && cfg.RoleOf(heroes[i].Class) != entities.RoleTank {
				absorbIdx = i
				break
			}
		}
		if absorbIdx >= 0 {
			sev[absorbIdx] = sev[absorbIdx].Reduced(1)
			if base > sev[tankIdx] {
				sev[tankIdx] = base
			}
		}
	}

	for i, h := range heroes {
		if sev[i] == entities.InjuryNone {
			continue
		}
		h.ApplyInjury(sev[i])
		result.Injuries = append(result.Injuries, entities.HeroInjury{
			HeroID:   h.ID,
			Severity: h.Injury,
		})
	}
}

// resolveCombat delegates to the combat simulator and translates its verdict
// into the common result shape
func (r *resolver) resolveCombat(
	ctx context.Context,
	cfg *rules.RulesConfig,
	quest *entities.Quest,
	heroes []*entities.Hero,
	result *entities.OutcomeResult,
	stats *engine.PartyStats,
	syn entities.BonusVector,
	effects *engine.PassiveEffects,
	partyLuckBonus, dungeonMult float64,
) (*entities.OutcomeResult, error) {
	out, err := r.combat.Simulate(ctx, &combat.SimulateInput{Quest: quest, Heroes: heroes})
	if err != nil {
		return nil, errors.Wrap(err, "combat simulation failed")
	}

	result.Success = out.Success
	result.CombatLogID = out.LogID

	byID := make(map[string]*entities.Hero, len(heroes))
	for _, h := range heroes {
		byID[h.ID] = h
	}

	for _, c := range out.Combatants {
		if !c.Alive {
			result.Deaths = append(result.Deaths, c.HeroID)
		}
	}

	if out.Success {
		r.grantSuccessRewards(cfg, quest, result, stats, syn, effects, partyLuckBonus, dungeonMult)
		return result, nil
	}

	grantFailureRewards(cfg, quest, result)
	// survivors of a failed combat walk away injured
	for _, c := range out.Combatants {
		if !c.Alive {
			continue
		}
		if h, ok := byID[c.HeroID]; ok {
			h.ApplyInjury(entities.InjuryInjured)
			result.Injuries = append(result.Injuries, entities.HeroInjury{
				HeroID:   h.ID,
				Severity: h.Injury,
			})
		}
	}
	return result, nil
}
