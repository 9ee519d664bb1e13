// Package roster defines the capability interface to the guild's party
// registry. Binding a Provider at construction time replaces the original
// per-call "is the party system loaded" nil checks; deployments without a
// registry bind the no-op.
package roster

//go:generate mockgen -destination=mock/mock_provider.go -package=rostermock github.com/ironvale/guild-api/internal/clients/roster Provider

import (
	"context"

	"github.com/ironvale/guild-api/internal/entities"
)

// Provider looks up registered parties and their trait bonuses
type Provider interface {
	// FindPartyByMembers returns the registered party exactly matching the
	// given heroes, or nil when they are an ad-hoc grouping.
	FindPartyByMembers(ctx context.Context, heroes []*entities.Hero) (*entities.Party, error)

	// QuestBonuses returns the party's trait bonuses for a quest
	QuestBonuses(ctx context.Context, party *entities.Party, quest *entities.Quest) (entities.BonusVector, error)
}

// Noop is the default Provider for deployments without a party registry
type Noop struct{}

// FindPartyByMembers always reports an ad-hoc grouping
func (Noop) FindPartyByMembers(_ context.Context, _ []*entities.Hero) (*entities.Party, error) {
	return nil, nil
}

// QuestBonuses always returns a zero vector
func (Noop) QuestBonuses(_ context.Context, _ *entities.Party, _ *entities.Quest) (entities.BonusVector, error) {
	return entities.BonusVector{}, nil
}

// NewNoop returns the no-op provider
func NewNoop() Provider {
	return Noop{}
}
