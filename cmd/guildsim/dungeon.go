package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/orchestrators/expedition"
	"github.com/ironvale/guild-api/internal/pkg/clock"
	"github.com/ironvale/guild-api/internal/pkg/idgen"
	"github.com/ironvale/guild-api/internal/redis"
	dungeonrun "github.com/ironvale/guild-api/internal/repositories/dungeon_run"
)

var (
	dungeonPartyFile    string
	dungeonQuestFile    string
	dungeonSeed         int64
	dungeonRetreatAfter int
	dungeonMaxAttempts  int
)

var dungeonCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Run a party through a full dungeon",
	Long:  `Dungeon starts a run and advances floor by floor until the run completes, the party retreats, or everyone is dead. Run state persists in Redis.`,
	RunE:  runDungeon,
}

func init() {
	dungeonCmd.Flags().StringVar(&dungeonPartyFile, "party", "party.yaml", "party YAML file")
	dungeonCmd.Flags().StringVar(&dungeonQuestFile, "quest", "quest.yaml", "dungeon quest YAML file")
	dungeonCmd.Flags().Int64Var(&dungeonSeed, "seed", 0, "random seed (0 = from env or clock)")
	dungeonCmd.Flags().IntVar(&dungeonRetreatAfter, "retreat-after", 0, "retreat once this many floors are cleared (0 = push to the end)")
	dungeonCmd.Flags().IntVar(&dungeonMaxAttempts, "max-attempts", 3, "attempts per floor before retreating")
}

func runDungeon(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := buildRules(cfg)
	if err != nil {
		return err
	}
	eng, err := buildEngine(store, cfg.effectiveSeed(dungeonSeed))
	if err != nil {
		return err
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}
	repo, err := dungeonrun.NewRedisRepository(&dungeonrun.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return err
	}

	svc, err := expedition.NewOrchestrator(&expedition.Config{
		Engine:      eng,
		RunRepo:     repo,
		Rules:       store,
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewUUID("run"),
	})
	if err != nil {
		return err
	}

	heroes, err := loadPartyFile(dungeonPartyFile)
	if err != nil {
		return err
	}
	quest, err := loadQuestFile(dungeonQuestFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	w := cmd.OutOrStdout()

	started, err := svc.StartDungeon(ctx, &expedition.StartDungeonInput{Quest: quest, Heroes: heroes})
	if err != nil {
		return err
	}
	run := started.Run
	fmt.Fprintf(w, "run %s: %d floors, party of %d\n", run.ID, run.FloorCount, len(heroes))

	attempts := 0
	for !run.Terminal() {
		out, err := svc.AdvanceFloor(ctx, &expedition.AdvanceFloorInput{
			RunID:  run.ID,
			Quest:  quest,
			Heroes: heroes,
		})
		if err != nil {
			return err
		}
		run = out.Run

		fmt.Fprintf(w, "floor %d: cleared=%v gold=%d deaths=%d injuries=%d\n",
			out.Outcome.Floor, out.Outcome.Cleared,
			out.Outcome.Result.Gold, len(out.Outcome.Result.Deaths), len(out.Outcome.Result.Injuries))

		heroes = removeFallen(heroes, out.Outcome.Result.Deaths)
		if len(heroes) == 0 {
			fmt.Fprintln(w, "party wiped")
			break
		}

		if out.Completed {
			fmt.Fprintf(w, "dungeon complete, bonus %d gold / %d xp\n", out.CompletionGold, out.CompletionXP)
			break
		}

		if out.Outcome.Cleared {
			attempts = 0
			if dungeonRetreatAfter > 0 && run.FloorsCleared() >= dungeonRetreatAfter {
				if _, err := svc.Retreat(ctx, &expedition.RetreatInput{RunID: run.ID}); err != nil {
					return err
				}
				fmt.Fprintln(w, "retreated by request")
				break
			}
			continue
		}

		attempts++
		if attempts >= dungeonMaxAttempts {
			if run.FloorsCleared() < 1 {
				fmt.Fprintln(w, "stuck on the first floor, abandoning")
				break
			}
			if _, err := svc.Retreat(ctx, &expedition.RetreatInput{RunID: run.ID}); err != nil {
				return err
			}
			fmt.Fprintln(w, "retreated after repeated failures")
			break
		}
	}

	final, err := svc.GetRun(ctx, &expedition.GetRunInput{RunID: run.ID})
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(final.Run, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", encoded)
	return nil
}

func removeFallen(heroes []*entities.Hero, deaths []string) []*entities.Hero {
	if len(deaths) == 0 {
		return heroes
	}
	dead := make(map[string]struct{}, len(deaths))
	for _, id := range deaths {
		dead[id] = struct{}{}
	}
	alive := heroes[:0]
	for _, h := range heroes {
		if _, ok := dead[h.ID]; !ok {
			alive = append(alive, h)
		}
	}
	return alive
}
