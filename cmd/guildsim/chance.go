package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironvale/guild-api/internal/engine"
)

var (
	chancePartyFile string
	chanceQuestFile string
)

var chanceCmd = &cobra.Command{
	Use:   "chance",
	Short: "Calculate a party's success chance for a quest",
	RunE:  runChance,
}

func init() {
	chanceCmd.Flags().StringVar(&chancePartyFile, "party", "party.yaml", "party YAML file")
	chanceCmd.Flags().StringVar(&chanceQuestFile, "quest", "quest.yaml", "quest YAML file")
}

func runChance(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := buildRules(cfg)
	if err != nil {
		return err
	}
	eng, err := buildEngine(store, cfg.effectiveSeed(0))
	if err != nil {
		return err
	}

	heroes, err := loadPartyFile(chancePartyFile)
	if err != nil {
		return err
	}
	quest, err := loadQuestFile(chanceQuestFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out, err := eng.CalculateSuccessChance(ctx, &engine.CalculateSuccessChanceInput{
		Quest:  quest,
		Heroes: heroes,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Quest %s (%s): success chance %.1f%%\n", quest.Name, quest.Rank, out.Chance*100)
	for _, line := range out.Stats.PerHero {
		fmt.Fprintf(w, "  %-12s base %3d  equip %+3d  effective %3d\n",
			line.HeroID, line.Base, line.EquipBonus, line.Effective)
	}

	synergies, err := eng.CalculateSynergies(ctx, &engine.CalculateSynergiesInput{
		Quest:  quest,
		Heroes: heroes,
	})
	if err != nil {
		return err
	}
	for _, rule := range synergies.Rules {
		fmt.Fprintf(w, "  synergy: %s\n", rule.Name)
	}
	if synergies.Archetype.Primary != "" {
		fmt.Fprintf(w, "  archetype: %s (%s)\n", synergies.Archetype.Kind, synergies.Archetype.Primary)
	} else {
		fmt.Fprintf(w, "  archetype: %s\n", synergies.Archetype.Kind)
	}
	return nil
}
