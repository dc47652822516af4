package main

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"vertical-roulette/internal/simulation"
)

func newSimulateCmd(flags *globalFlags) *cobra.Command {
	var spins int
	var maxTicks int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run spins headless on a virtual clock and report their length.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := flags.load(cmd)
			if err != nil {
				return err
			}
			defer log.Shutdown()

			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runner := simulation.NewRunner(catalog, cfg.Options(), log)
			runner.SetMaxTicks(maxTicks)

			report, err := runner.Run(ctx, spins)
			if err != nil {
				log.Error("Simulate", err, map[string]interface{}{"spins_done": spinsDone(report)})
				return err
			}

			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().IntVarP(&spins, "spins", "n", 1000, "number of spins to run")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", simulation.DefaultMaxTicks, "abort when a spin exceeds this many ticks")

	return cmd
}

func printReport(cmd *cobra.Command, report *simulation.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "spins:        %d\n", report.Spins)
	fmt.Fprintf(out, "ticks min:    %d\n", report.MinTicks)
	fmt.Fprintf(out, "ticks max:    %d\n", report.MaxTicks)
	fmt.Fprintf(out, "ticks mean:   %.2f\n", report.MeanTicks)
	fmt.Fprintf(out, "virtual time: %v\n", report.TotalVirtual)

	labels := make([]string, 0, len(report.Centers))
	for label := range report.Centers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(out, "center %-8s %d\n", label, report.Centers[label])
	}
}

func spinsDone(report *simulation.Report) int {
	if report == nil {
		return 0
	}
	return report.Spins
}
