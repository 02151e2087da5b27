package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/creature-arena/internal/config"
	"github.com/KirkDiggler/creature-arena/internal/narration"
	"github.com/KirkDiggler/creature-arena/internal/scenario"
	"github.com/KirkDiggler/creature-arena/internal/services"
	"github.com/KirkDiggler/creature-arena/internal/services/battle"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs
type app struct {
	out          io.Writer
	scenarioPath string
	verbose      bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "arena",
		Short: "Pit dragons, elves and orcs against each other",
		Long: `arena spawns the creatures a scenario declares and plays its turns.

Without --scenario the built-in battle between Smaug, Legolas and Grommash is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			a.logger, err = cfg.Log.BuildLogger(a.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.scenarioPath, "scenario", "", "scenario YAML file (default: built-in battle)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRosterCmd(a), newBattleCmd(a))
	return root
}

func (a *app) loadScenario() (*scenario.Scenario, error) {
	path := a.scenarioPath
	if path == "" {
		path = a.cfg.Arena.Scenario
	}
	if path == "" {
		return scenario.Default(), nil
	}

	a.logger.Info("loading scenario", zap.String("path", path))
	return scenario.Load(path)
}

// newService wires a fresh roster, bus and battle service. The narrator is
// attached when narrate is set.
func (a *app) newService(narrate bool) (battle.Service, error) {
	clock, err := a.cfg.Clock.Build()
	if err != nil {
		return nil, err
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Clock:  clock,
		Logger: a.logger,
	})

	if narrate {
		narration.SubscribeAll(provider.Bus, narration.NewNarrator(a.out))
	}
	narration.SubscribeAll(provider.Bus, narration.NewLogger(a.logger))

	return provider.BattleService, nil
}
