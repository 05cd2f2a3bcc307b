package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show economy statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if cmd.Flags().Changed("top") {
				records, err := app.StatsController.TopByPlayMoney(cmd.Context(), top)
				if err != nil {
					return err
				}
				out.Print(records)
				return nil
			}

			summary, err := app.StatsController.Summary(cmd.Context())
			if err != nil {
				return err
			}
			out.Print(summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Show the N wealthiest players instead of the summary")

	return cmd
}
