package resolver

import (
	"context"
	"sort"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/rules"
)

// CalculateSynergies evaluates class composition rules and the passive
// archetype for a party
func (r *resolver) CalculateSynergies(
	_ context.Context,
	input *engine.CalculateSynergiesInput,
) (*engine.CalculateSynergiesOutput, error) {
	cfg := r.rules.Snapshot()

	triggered := triggeredRules(cfg, input.Heroes)
	arch, archBonus := classifyArchetype(cfg, input.Heroes)

	combined := archBonus
	for _, t := range triggered {
		combined = combined.Add(t.Bonus)
	}

	return &engine.CalculateSynergiesOutput{
		Rules:     triggered,
		Combined:  combined,
		Archetype: arch,
	}, nil
}

// combinedSynergy is the internal shortcut used by the chance calculation
func (r *resolver) combinedSynergy(cfg *rules.RulesConfig, heroes []*entities.Hero) entities.BonusVector {
	_, archBonus := classifyArchetype(cfg, heroes)
	combined := archBonus
	for _, t := range triggeredRules(cfg, heroes) {
		combined = combined.Add(t.Bonus)
	}
	return combined
}

// triggeredRules returns the active class composition rules sorted by
// priority. Ordering is for display only; the summed vector is
// order-independent.
func triggeredRules(cfg *rules.RulesConfig, heroes []*entities.Hero) []engine.TriggeredSynergy {
	var out []engine.TriggeredSynergy
	for _, rule := range cfg.Synergies {
		if ruleActive(rule, heroes) {
			out = append(out, engine.TriggeredSynergy{
				ID:       rule.ID,
				Name:     rule.Name,
				Priority: rule.Priority,
				Bonus:    rule.Bonus,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

func ruleActive(rule rules.SynergyRule, heroes []*entities.Hero) bool {
	switch rule.Shape {
	case rules.ShapeMinCount:
		count := 0
		for _, h := range heroes {
			if classIn(h.Class, rule.Classes) {
				count++
			}
		}
		return rule.MinCount > 0 && count >= rule.MinCount

	case rules.ShapeCombination:
		if len(rule.Groups) == 0 {
			return false
		}
		for _, group := range rule.Groups {
			found := false
			for _, h := range heroes {
				if classIn(h.Class, group) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true

	case rules.ShapeUniqueClasses:
		distinct := make(map[entities.Class]struct{}, len(heroes))
		for _, h := range heroes {
			distinct[h.Class] = struct{}{}
		}
		return rule.MinCount > 0 && len(distinct) >= rule.MinCount

	default:
		// unknown shapes contribute nothing
		return false
	}
}

func classIn(c entities.Class, set []entities.Class) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// classifyArchetype classifies the party's passive-category distribution and
// returns the archetype with its bonus vector. Parties below the minimum size
// are unconditionally None.
func classifyArchetype(cfg *rules.RulesConfig, heroes []*entities.Hero) (entities.Archetype, entities.BonusVector) {
	none := entities.Archetype{Kind: entities.ArchetypeNone}
	if len(heroes) < cfg.Archetypes.MinPartySize {
		return none, entities.BonusVector{}
	}

	counts := make(map[entities.PassiveCategory]int)
	effects := make(map[entities.PassiveCategory]float64)
	for _, h := range heroes {
		if h.Passive == nil {
			continue
		}
		counts[h.Passive.Category]++
		effects[h.Passive.Category] += h.Passive.Magnitude
	}

	// Sort categories by count descending; ties break on the fixed
	// category order so classification is stable.
	cats := entities.Categories()
	sort.SliceStable(cats, func(i, j int) bool { return counts[cats[i]] > counts[cats[j]] })
	c := [4]int{counts[cats[0]], counts[cats[1]], counts[cats[2]], counts[cats[3]]}

	ar := cfg.Archetypes
	switch {
	case c == [4]int{4, 0, 0, 0}:
		top := cats[0]
		return entities.Archetype{Kind: entities.ArchetypePure, Primary: top},
			categoryChannel(top, ar.PureWeight*effects[top])

	case c == [4]int{3, 1, 0, 0}:
		primary, secondary := cats[0], cats[1]
		bonus := categoryChannel(primary, ar.FocusedPrimaryWeight*effects[primary]).
			Add(categoryChannel(secondary, ar.FocusedSecondaryWeight*effects[secondary]))
		return entities.Archetype{Kind: entities.ArchetypeFocused, Primary: primary, Secondary: secondary}, bonus

	case c == [4]int{2, 2, 0, 0}:
		cat1, cat2 := cats[0], cats[1]
		bonus := categoryChannel(cat1, ar.BalancedWeight*effects[cat1]).
			Add(categoryChannel(cat2, ar.BalancedWeight*effects[cat2]))
		return entities.Archetype{Kind: entities.ArchetypeBalanced, Primary: cat1, Secondary: cat2}, bonus

	case c == [4]int{2, 1, 1, 0}:
		return entities.Archetype{Kind: entities.ArchetypeVersatile}, flatCategoryBonus(ar.VersatileBonus)

	case c == [4]int{1, 1, 1, 1}:
		return entities.Archetype{Kind: entities.ArchetypeDiverse}, flatCategoryBonus(ar.DiverseBonus)

	default:
		return none, entities.BonusVector{}
	}
}

// categoryChannel routes a category's magnitude onto its bonus channel
func categoryChannel(cat entities.PassiveCategory, v float64) entities.BonusVector {
	switch cat {
	case entities.CategoryOffense:
		return entities.BonusVector{Success: v}
	case entities.CategoryDefense:
		return entities.BonusVector{Survival: v}
	case entities.CategoryWealth:
		return entities.BonusVector{Drop: v}
	case entities.CategorySpeed:
		return entities.BonusVector{TravelReduction: v}
	default:
		return entities.BonusVector{}
	}
}

func flatCategoryBonus(v float64) entities.BonusVector {
	var out entities.BonusVector
	for _, cat := range entities.Categories() {
		out = out.Add(categoryChannel(cat, v))
	}
	return out
}
