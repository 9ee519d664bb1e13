package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironvale/guild-api/internal/engine"
)

var (
	resolvePartyFile string
	resolveQuestFile string
	resolveSeed      int64
	resolveLuckBonus float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a quest outcome for a party",
	Long:  `Resolve rolls a quest outcome. The same seed with the same party, quest, and rules replays the exact outcome.`,
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolvePartyFile, "party", "party.yaml", "party YAML file")
	resolveCmd.Flags().StringVar(&resolveQuestFile, "quest", "quest.yaml", "quest YAML file")
	resolveCmd.Flags().Int64Var(&resolveSeed, "seed", 0, "random seed (0 = from env or clock)")
	resolveCmd.Flags().Float64Var(&resolveLuckBonus, "luck-bonus", 0, "registered party drop-luck bonus")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := buildRules(cfg)
	if err != nil {
		return err
	}

	seed := cfg.effectiveSeed(resolveSeed)
	eng, err := buildEngine(store, seed)
	if err != nil {
		return err
	}

	heroes, err := loadPartyFile(resolvePartyFile)
	if err != nil {
		return err
	}
	quest, err := loadQuestFile(resolveQuestFile)
	if err != nil {
		return err
	}

	out, err := eng.Resolve(context.Background(), &engine.ResolveInput{
		Quest:          quest,
		Heroes:         heroes,
		PartyLuckBonus: resolveLuckBonus,
	})
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(out.Result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seed: %d\n%s\n", seed, encoded)
	return nil
}
