package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-arena/internal/services/battle"
)

func newBattleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "battle",
		Short: "Play the scenario's turns and report who is left standing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.loadScenario()
			if err != nil {
				return err
			}

			svc, err := a.newService(true)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "=== BATTLE BEGINS! ===")
			report, err := svc.Run(cmd.Context(), sc)
			if err != nil {
				return err
			}

			printFailures(a, report)
			return printStatus(a, report)
		},
	}
}

func printFailures(a *app, report *battle.Report) {
	failures := report.Failures()
	if len(failures) == 0 {
		return
	}

	fmt.Fprintln(a.out, "\n=== FAILED ACTIONS ===")
	for _, f := range failures {
		title := f.Title
		if title == "" {
			title = fmt.Sprintf("%s %s", f.Actor, f.Action)
		}
		fmt.Fprintf(a.out, "%s (attempt %d): [%s] %v\n", title, f.Attempt, f.Code, f.Err)
	}
}

func printStatus(a *app, report *battle.Report) error {
	fmt.Fprintln(a.out, "\n=== FINAL STATUS ===")

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tHEALTH\tSTATUS")
	for _, s := range report.Final {
		status := "Dead"
		if s.Alive {
			status = "Alive"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.Kind.Title(), s.Health, status)
	}
	return tw.Flush()
}
