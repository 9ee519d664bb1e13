// Package resolver implements the quest resolution engine.
//
// All tuning flows in through a rules snapshot taken once per call, all
// randomness through the injected source, and all optional collaborators
// through capability interfaces bound at construction. Given the same
// inputs, seed, and tables, every resolution replays exactly.
package resolver

import (
	"context"

	"github.com/ironvale/guild-api/internal/clients/combat"
	"github.com/ironvale/guild-api/internal/clients/equipment"
	"github.com/ironvale/guild-api/internal/clients/roster"
	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/pkg/rng"
	"github.com/ironvale/guild-api/internal/rules"
)

// Config holds the dependencies for the resolver
type Config struct {
	Rules  rules.Provider
	Random rng.Source
	Combat combat.Client

	// Roster and Equipment default to no-op providers when unset
	Roster    roster.Provider
	Equipment equipment.Provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}

	return vb.Build()
}

type resolver struct {
	rules     rules.Provider
	random    rng.Source
	combat    combat.Client
	roster    roster.Provider
	equipment equipment.Provider
}

// New creates a new resolution engine with the provided dependencies
func New(cfg *Config) (engine.Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &resolver{
		rules:     cfg.Rules,
		random:    cfg.Random,
		combat:    cfg.Combat,
		roster:    cfg.Roster,
		equipment: cfg.Equipment,
	}
	if r.roster == nil {
		r.roster = roster.NewNoop()
	}
	if r.equipment == nil {
		r.equipment = equipment.NewNoop()
	}
	return r, nil
}

var _ engine.Engine = (*resolver)(nil)

// CalculateSuccessChance combines every contributor into one clamped probability
func (r *resolver) CalculateSuccessChance(
	ctx context.Context,
	input *engine.CalculateSuccessChanceInput,
) (*engine.CalculateSuccessChanceOutput, error) {
	cfg := r.rules.Snapshot()

	chance, stats, err := r.successChance(ctx, cfg, input.Quest, input.Heroes, 1.0)
	if err != nil {
		return nil, err
	}

	return &engine.CalculateSuccessChanceOutput{
		Chance: chance,
		Stats:  stats,
	}, nil
}
