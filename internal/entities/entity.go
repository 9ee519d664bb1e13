package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// The domain objects satisfy the toolkit entity contract so they can ride
// the event bus as sources and targets.
var (
	_ core.Entity = (*Hero)(nil)
	_ core.Entity = (*Quest)(nil)
	_ core.Entity = (*Party)(nil)
	_ core.Entity = (*DungeonRunState)(nil)
)
