package main

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/ironvale/guild-api/internal/clients/combat"
	"github.com/ironvale/guild-api/internal/engine"
	"github.com/ironvale/guild-api/internal/engine/resolver"
	"github.com/ironvale/guild-api/internal/entities"
	"github.com/ironvale/guild-api/internal/errors"
	"github.com/ironvale/guild-api/internal/pkg/idgen"
	"github.com/ironvale/guild-api/internal/pkg/rng"
	"github.com/ironvale/guild-api/internal/rules"
)

// Config is read from the environment; flags override per command
type Config struct {
	RedisAddr string `env:"GUILD_REDIS_ADDR" envDefault:"localhost:6379"`
	RulesPath string `env:"GUILD_RULES_PATH"`
	Seed      int64  `env:"GUILD_SEED"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}

// effectiveSeed prefers the flag, then the environment, then wall time
func (c *Config) effectiveSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func buildRules(cfg *Config) (*rules.Store, error) {
	if cfg.RulesPath != "" {
		return rules.NewStoreFromFile(cfg.RulesPath)
	}
	return rules.NewStore(nil), nil
}

func buildEngine(store *rules.Store, seed int64) (engine.Engine, error) {
	sim, err := combat.NewSimulator(&combat.SimulatorConfig{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("combat"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build combat simulator")
	}

	return resolver.New(&resolver.Config{
		Rules:  store,
		Random: rng.NewSeeded(seed),
		Combat: sim,
	})
}

func loadPartyFile(path string) ([]*entities.Hero, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied fixture path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read party file %s", path)
	}

	var heroes []*entities.Hero
	if err := yaml.Unmarshal(data, &heroes); err != nil {
		return nil, errors.Wrapf(err, "failed to parse party file %s", path)
	}
	if len(heroes) == 0 {
		return nil, errors.InvalidArgumentf("party file %s holds no heroes", path)
	}
	return heroes, nil
}

func loadQuestFile(path string) (*entities.Quest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied fixture path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read quest file %s", path)
	}

	var quest entities.Quest
	if err := yaml.Unmarshal(data, &quest); err != nil {
		return nil, errors.Wrapf(err, "failed to parse quest file %s", path)
	}
	if quest.ID == "" {
		return nil, errors.InvalidArgumentf("quest file %s is missing an id", path)
	}
	return &quest, nil
}
