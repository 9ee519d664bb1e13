// Package main is the entry point for the guild simulation CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guildsim",
	Short: "Guild quest resolution simulator",
	Long:  `guildsim resolves quests and dungeon runs for parties of heroes using the guild resolution engine.`,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(chanceCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(dungeonCmd)
	rootCmd.AddCommand(rulesCmd)
}
