// Package equipment defines the capability interface to the crafting and
// equipment system. The engine only asks it what a hero's gear adds to a
// stat; catalog ownership stays outside.
package equipment

//go:generate mockgen -destination=mock/mock_provider.go -package=equipmentmock github.com/ironvale/guild-api/internal/clients/equipment Provider

import (
	"github.com/ironvale/guild-api/internal/entities"
)

// Provider reports equipment stat bonuses
type Provider interface {
	// Bonus returns the flat bonus a hero's equipment grants for a stat
	Bonus(hero *entities.Hero, stat entities.Stat) int
}

// Noop is the default Provider for deployments without an equipment system
type Noop struct{}

// Bonus always returns zero
func (Noop) Bonus(_ *entities.Hero, _ entities.Stat) int {
	return 0
}

// NewNoop returns the no-op provider
func NewNoop() Provider {
	return Noop{}
}

// Static is a fixed-table Provider, handy for tests and offline simulation
type Static struct {
	// Bonuses maps hero ID then stat to a flat bonus
	Bonuses map[string]map[entities.Stat]int
}

// Bonus returns the configured bonus, 0 when absent
func (s *Static) Bonus(hero *entities.Hero, stat entities.Stat) int {
	if hero == nil {
		return 0
	}
	return s.Bonuses[hero.ID][stat]
}
