package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ironvale/guild-api/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and check tuning tables",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tuning tables as YAML",
	RunE:  runRulesShow,
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Load a tuning file over the defaults and report problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesCheck,
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}

func runRulesShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := buildRules(cfg)
	if err != nil {
		return err
	}

	encoded, err := yaml.Marshal(store.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s", encoded)
	return nil
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	if _, err := rules.NewStoreFromFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}
