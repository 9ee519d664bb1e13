package resolver

import (
	"context"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/rules"
)

// GetPartyPassiveEffects aggregates hero passives into reward and survival
// modifiers
func (r *resolver) GetPartyPassiveEffects(
	_ context.Context,
	input *engine.GetPartyPassiveEffectsInput,
) (*engine.GetPartyPassiveEffectsOutput, error) {
	cfg := r.rules.Snapshot()

	return &engine.GetPartyPassiveEffectsOutput{
		Effects: partyPassiveEffects(cfg, input.Heroes),
	}, nil
}

// partyPassiveEffects sums the party's passive magnitudes per channel.
// Unknown kinds contribute zero; the archetype-only kinds (battle fury,
// bulwark, fleet foot) carry their weight through synergy classification
// instead.
func partyPassiveEffects(cfg *rules.RulesConfig, heroes []*entities.Hero) *engine.PassiveEffects {
	e := &engine.PassiveEffects{}
	for _, h := range heroes {
		if h.Passive == nil {
			continue
		}
		switch h.Passive.Kind {
		case entities.PassiveGoldFind:
			e.GoldBonus += h.Passive.Magnitude
		case entities.PassiveScholar:
			e.XPBonus += h.Passive.Magnitude
		case entities.PassiveTreasureSense:
			e.MaterialBonus += h.Passive.Magnitude
		case entities.PassiveIronWill:
			e.DeathReduction += h.Passive.Magnitude
		case entities.PassiveShadowStep:
			e.ShadowStepChance += h.Passive.Magnitude
		}
	}
	if e.DeathReduction > cfg.Death.MaxPassiveReduction {
		e.DeathReduction = cfg.Death.MaxPassiveReduction
	}
	return e
}

// heroDeathReduction is the hero's own defensive passive, capped
func heroDeathReduction(cfg *rules.RulesConfig, h *entities.Hero) float64 {
	if h.Passive == nil || h.Passive.Kind != entities.PassiveIronWill {
		return 0
	}
	red := h.Passive.Magnitude
	if red > cfg.Death.MaxPassiveReduction {
		red = cfg.Death.MaxPassiveReduction
	}
	return red
}

// heroShadowStepChance is the hero's own evasion passive
func heroShadowStepChance(h *entities.Hero) float64 {
	if h.Passive == nil || h.Passive.Kind != entities.PassiveShadowStep {
		return 0
	}
	return h.Passive.Magnitude
}
