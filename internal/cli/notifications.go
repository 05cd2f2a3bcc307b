package cli

import (
	"github.com/spf13/cobra"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notification history commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the session's notification history",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Notifier.History(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(history)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Discard the session's notification history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notifier.Clear(cmd.Context()); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Notifications cleared")
			return nil
		},
	})

	return cmd
}
