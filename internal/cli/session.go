package cli

import (
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Operator session commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "Discard the session's grid state, draft, and notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.GridController.EndSession(ctx, app.SessionID); err != nil {
				return err
			}
			if err := app.AssetEditor.Discard(ctx, app.SessionID); err != nil {
				return err
			}
			if err := app.Notifier.Clear(ctx); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Session ended")
			return nil
		},
	})

	return cmd
}
