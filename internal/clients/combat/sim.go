package combat

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/pkg/idgen"
)

const (
	maxRounds = 10

	// progress a party must accumulate per quest rank ordinal
	progressPerRank = 30
)

// SimulatorConfig holds the dependencies for the built-in simulator
type SimulatorConfig struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *SimulatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Simulator is a compact built-in Client for runs without the full tactical
// simulator attached. Each round every standing hero rolls a d20 plus a stat
// modifier toward a rank-scaled progress threshold; a natural 1 on a lethal
// quest downs the hero.
type Simulator struct {
	roller dice.Roller
	idGen  idgen.Generator
}

// NewSimulator creates a new built-in combat simulator
func NewSimulator(cfg *SimulatorConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Simulator{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
	}, nil
}

var _ Client = (*Simulator)(nil)

// Simulate runs the combat to a verdict
func (s *Simulator) Simulate(_ context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil || input.Quest == nil {
		return nil, errors.InvalidArgument("quest is required")
	}
	if len(input.Heroes) == 0 {
		return nil, errors.InvalidArgument("at least one hero is required")
	}

	threshold := input.Quest.Rank.Ordinal() * progressPerRank
	alive := make([]bool, len(input.Heroes))
	damage := make([]int, len(input.Heroes))
	for i := range alive {
		alive[i] = true
	}

	progress := 0
	rounds := 0
	for rounds < maxRounds && progress < threshold {
		rounds++
		standing := 0
		for i, h := range input.Heroes {
			if !alive[i] {
				continue
			}
			roll, err := s.roller.Roll(20)
			if err != nil {
				return nil, errors.Wrap(err, "combat roll failed")
			}
			if roll == 1 && input.Quest.CanKill {
				alive[i] = false
				continue
			}
			standing++
			dealt := roll + h.Stat(input.Quest.RequiredStat)/5
			damage[i] += dealt
			progress += dealt
		}
		if standing == 0 {
			break
		}
	}

	out := &SimulateOutput{
		LogID:      s.idGen.Generate(),
		Success:    progress >= threshold,
		Rounds:     rounds,
		Combatants: make([]CombatantResult, len(input.Heroes)),
	}

	best := -1
	for i, h := range input.Heroes {
		out.Combatants[i] = CombatantResult{
			HeroID:      h.ID,
			Alive:       alive[i],
			DamageDealt: damage[i],
		}
		if damage[i] > best {
			best = damage[i]
			out.MVPHeroID = h.ID
		}
	}

	out.Summary = fmt.Sprintf("combat resolved in %d rounds, progress %d/%d", rounds, progress, threshold)
	return out, nil
}
