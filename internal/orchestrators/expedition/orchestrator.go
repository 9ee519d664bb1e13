// Package expedition implements the expedition orchestrator driving quest
// resolution and dungeon runs
package expedition

//go:generate mockgen -destination=mock/mock_service.go -package=expeditionmock github.com/ironvale/guild-api/internal/orchestrators/expedition Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/pkg/idgen"
	dungeonrun "github.com/ironvale/guild-api/internal/repositories/dungeon_run"
	"github.com/ironvale/guild-api/internal/rules"
)

// Event topics published by the orchestrator
const (
	EventQuestResolved  = "quest.resolved"
	EventDungeonFloor   = "dungeon.floor"
	EventDungeonRetreat = "dungeon.retreat"
)

// Service defines the interface for expedition operations
type Service interface {
	// ResolveQuest resolves one completed non-dungeon quest
	ResolveQuest(ctx context.Context, input *ResolveQuestInput) (*ResolveQuestOutput, error)

	// Dungeon run lifecycle
	StartDungeon(ctx context.Context, input *StartDungeonInput) (*StartDungeonOutput, error)
	AdvanceFloor(ctx context.Context, input *AdvanceFloorInput) (*AdvanceFloorOutput, error)
	Retreat(ctx context.Context, input *RetreatInput) (*RetreatOutput, error)
	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
}

// Config holds the dependencies for the expedition orchestrator
type Config struct {
	Engine      engine.Engine
	RunRepo     dungeonrun.Repository
	Rules       rules.Provider
	EventBus    events.EventBus
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.RunRepo == nil {
		vb.RequiredField("RunRepo")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   engine.Engine
	runRepo  dungeonrun.Repository
	rules    rules.Provider
	eventBus events.EventBus
	idGen    idgen.Generator
}

// NewOrchestrator creates a new expedition orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:   cfg.Engine,
		runRepo:  cfg.RunRepo,
		rules:    cfg.Rules,
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// ResolveQuest resolves one completed non-dungeon quest
func (o *orchestrator) ResolveQuest(ctx context.Context, input *ResolveQuestInput) (*ResolveQuestOutput, error) {
	if err := validateParty(input.Quest, input.Heroes); err != nil {
		return nil, err
	}
	if input.Quest.IsDungeon {
		return nil, errors.InvalidArgument("dungeon quests resolve floor by floor, use StartDungeon")
	}

	out, err := o.engine.Resolve(ctx, &engine.ResolveInput{
		Quest:          input.Quest,
		Heroes:         input.Heroes,
		PartyLuckBonus: input.PartyLuckBonus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve quest")
	}

	slog.Info("Quest resolved",
		"quest_id", input.Quest.ID,
		"success", out.Result.Success,
		"chance", out.Result.Chance,
		"deaths", len(out.Result.Deaths),
		"injuries", len(out.Result.Injuries),
	)

	event := events.NewGameEvent(EventQuestResolved, input.Quest, nil)
	event.Context().Set("success", out.Result.Success)
	event.Context().Set("gold", out.Result.Gold)
	event.Context().Set("xp", out.Result.XP)
	event.Context().Set("deaths", len(out.Result.Deaths))
	o.publish(ctx, event)

	return &ResolveQuestOutput{Result: out.Result}, nil
}

// StartDungeon opens a new dungeon run on the first floor
func (o *orchestrator) StartDungeon(ctx context.Context, input *StartDungeonInput) (*StartDungeonOutput, error) {
	if err := validateParty(input.Quest, input.Heroes); err != nil {
		return nil, err
	}
	if !input.Quest.IsDungeon {
		return nil, errors.InvalidArgument("quest is not a dungeon")
	}
	if input.Quest.FloorCount < 1 {
		return nil, errors.InvalidArgument("dungeon must have at least one floor")
	}

	heroIDs := make([]string, len(input.Heroes))
	for i, h := range input.Heroes {
		heroIDs[i] = h.ID
	}

	run := &entities.DungeonRunState{
		ID:           o.idGen.Generate(),
		QuestID:      input.Quest.ID,
		HeroIDs:      heroIDs,
		FloorCount:   input.Quest.FloorCount,
		CurrentFloor: 1,
		Status:       entities.RunInProgress,
	}

	created, err := o.runRepo.Create(ctx, dungeonrun.CreateInput{Run: run})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon run")
	}

	slog.Info("Dungeon run started",
		"run_id", run.ID,
		"quest_id", run.QuestID,
		"floors", run.FloorCount,
		"party_size", len(heroIDs),
	)

	return &StartDungeonOutput{Run: created.Run}, nil
}

// AdvanceFloor resolves the run's current floor. A cleared floor moves the
// run forward (or completes it on the last floor, paying the completion
// bonus); a failed floor leaves the run on the same floor so the party can
// retry or retreat.
func (o *orchestrator) AdvanceFloor(ctx context.Context, input *AdvanceFloorInput) (*AdvanceFloorOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}
	if err := validateParty(input.Quest, input.Heroes); err != nil {
		return nil, err
	}

	got, err := o.runRepo.Get(ctx, dungeonrun.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dungeon run")
	}
	run := got.Run
	if run.Terminal() {
		return nil, errors.FailedPreconditionf("dungeon run %s is already %s", run.ID, run.Status)
	}
	if err := checkPartyMembership(run, input.Heroes); err != nil {
		return nil, err
	}

	floor := run.CurrentFloor

	chanceOut, err := o.engine.CalculateFloorSuccessChance(ctx, &engine.CalculateFloorSuccessChanceInput{
		Quest:  input.Quest,
		Heroes: input.Heroes,
		Floor:  floor,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate floor chance")
	}

	resolved, err := o.engine.ResolveFloor(ctx, &engine.ResolveFloorInput{
		Quest:          input.Quest,
		Heroes:         input.Heroes,
		Floor:          floor,
		PartyLuckBonus: input.PartyLuckBonus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve floor")
	}
	outcome := resolved.Outcome

	run.Floors = append(run.Floors, *outcome)
	run.Gold += outcome.Result.Gold
	run.XP += outcome.Result.XP
	run.Rewards = append(run.Rewards, outcome.Result.BonusRewards...)

	// fatigue only deepens within a run
	if fatigue := 1.0 - chanceOut.FatigueMultiplier; fatigue > run.CumulativeFatigue {
		run.CumulativeFatigue = fatigue
	}

	output := &AdvanceFloorOutput{Outcome: outcome}
	if outcome.Cleared {
		if floor >= run.FloorCount {
			run.Status = entities.RunCompleted
			pct := o.rules.Snapshot().Dungeon.CompletionBonusPct
			output.Completed = true
			output.CompletionGold = int(math.Round(float64(run.Gold) * pct))
			output.CompletionXP = int(math.Round(float64(run.XP) * pct))
			run.Gold += output.CompletionGold
			run.XP += output.CompletionXP
		} else {
			run.CurrentFloor = floor + 1
		}
	}

	updated, err := o.runRepo.Update(ctx, dungeonrun.UpdateInput{Run: run})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist dungeon run")
	}
	output.Run = updated.Run

	slog.Info("Dungeon floor resolved",
		"run_id", run.ID,
		"floor", floor,
		"cleared", outcome.Cleared,
		"status", run.Status,
		"deaths", len(outcome.Result.Deaths),
	)

	event := events.NewGameEvent(EventDungeonFloor, run, nil)
	event.Context().Set("floor", floor)
	event.Context().Set("cleared", outcome.Cleared)
	event.Context().Set("status", string(run.Status))
	o.publish(ctx, event)

	return output, nil
}

// Retreat withdraws the party, keeping earned rewards. Requires at least one
// cleared floor; retreat is terminal for the run.
func (o *orchestrator) Retreat(ctx context.Context, input *RetreatInput) (*RetreatOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	got, err := o.runRepo.Get(ctx, dungeonrun.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dungeon run")
	}
	run := got.Run
	if run.Terminal() {
		return nil, errors.FailedPreconditionf("dungeon run %s is already %s", run.ID, run.Status)
	}
	if run.FloorsCleared() < 1 {
		return nil, errors.FailedPrecondition("retreat requires at least one cleared floor")
	}

	run.Status = entities.RunRetreated

	updated, err := o.runRepo.Update(ctx, dungeonrun.UpdateInput{Run: run})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist dungeon run")
	}

	slog.Info("Party retreated from dungeon",
		"run_id", run.ID,
		"floors_cleared", run.FloorsCleared(),
		"gold_kept", run.Gold,
	)

	event := events.NewGameEvent(EventDungeonRetreat, run, nil)
	event.Context().Set("floors_cleared", run.FloorsCleared())
	o.publish(ctx, event)

	return &RetreatOutput{Run: updated.Run}, nil
}

// GetRun fetches a run by ID
func (o *orchestrator) GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	got, err := o.runRepo.Get(ctx, dungeonrun.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dungeon run")
	}

	return &GetRunOutput{Run: got.Run}, nil
}

// publish sends an event best-effort; resolution results are already
// persisted when events go out
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event", "type", event.Type(), "error", err)
	}
}

func validateParty(quest *entities.Quest, heroes []*entities.Hero) error {
	vb := errors.NewValidationBuilder()

	if quest == nil {
		vb.RequiredField("Quest")
	} else if quest.ID == "" {
		vb.RequiredField("Quest.ID")
	}
	if len(heroes) == 0 {
		vb.RequiredField("Heroes")
	}
	for _, h := range heroes {
		if h == nil || h.ID == "" {
			vb.InvalidField("Heroes", "every hero needs an ID")
			break
		}
	}

	return vb.Build()
}

func checkPartyMembership(run *entities.DungeonRunState, heroes []*entities.Hero) error {
	members := make(map[string]struct{}, len(run.HeroIDs))
	for _, id := range run.HeroIDs {
		members[id] = struct{}{}
	}
	for _, h := range heroes {
		if _, ok := members[h.ID]; !ok {
			return errors.InvalidArgumentf("hero %s is not part of run %s", h.ID, run.ID)
		}
	}
	return nil
}
