package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-arena/internal/creatures"
)

func newRosterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Spawn the scenario's creatures and print their details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.loadScenario()
			if err != nil {
				return err
			}

			svc, err := a.newService(false)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := svc.Setup(ctx, sc); err != nil {
				return err
			}

			list, err := svc.Roster(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "=== CREATURE DETAILS ===")
			for _, c := range list {
				fmt.Fprintf(a.out, "\n--- %s ---\n", c.Name())
				if err := creatures.WriteDetails(a.out, c); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Type: %s\n", c.Kind().Title())
			}
			return nil
		},
	}
}
