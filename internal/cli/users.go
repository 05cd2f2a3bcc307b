package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/reward"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Player record grid commands",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersRefreshCmd())
	cmd.AddCommand(newUsersSelectCmd())
	cmd.AddCommand(newUsersSelectPageCmd())
	cmd.AddCommand(newUsersSelectedCmd())
	cmd.AddCommand(newUsersClearCmd())
	cmd.AddCommand(newUsersReorderCmd())
	cmd.AddCommand(newUsersSetRoleCmd())
	cmd.AddCommand(newUsersRewardCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	var (
		sortKey    string
		sortDesc   bool
		filterName string
		filterID   string
		filterRole string
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the player grid",
		Long: `Show the player grid for this session.

Sort, filter, and pagination flags change the session's view and persist
for later invocations. Omitted flags leave the current view untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessionID := app.SessionID

			if cmd.Flags().Changed("sort") || cmd.Flags().Changed("desc") {
				if err := app.GridController.SetSort(ctx, sessionID, model.SortKey(sortKey), sortDesc); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("filter-name") || cmd.Flags().Changed("filter-id") || cmd.Flags().Changed("filter-role") {
				if err := app.GridController.SetFilters(ctx, sessionID, filterName, filterID, model.Role(filterRole)); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("page-size") {
				if err := app.GridController.SetPageSize(ctx, sessionID, pageSize); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("page") {
				// Pages are 1-based on the command line
				if err := app.GridController.SetPage(ctx, sessionID, page-1); err != nil {
					return err
				}
			}

			view, err := app.GridController.View(ctx, sessionID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(view)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort column: name, id, playMoney, realMoney, role (empty clears)")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort descending")
	cmd.Flags().StringVar(&filterName, "filter-name", "", "Name substring filter")
	cmd.Flags().StringVar(&filterID, "filter-id", "", "ID substring filter")
	cmd.Flags().StringVar(&filterRole, "filter-role", "", "Exact role filter")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Rows per page: 10, 20, 30, 40, 50")

	return cmd
}

func newUsersRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch a fresh snapshot from the game service",
		Long: `Fetch a fresh snapshot from the game service.

The grid renders from the snapshot fetched when the session first touched
it, so service-side changes only appear after a refresh. Refreshing resets
any manual reordering to the service's order and drops selections of
players that no longer exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.GridController.Refresh(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Fetched %d players", store.Len()))
			return nil
		},
	}
}

func newUsersSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Toggle selection of one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GridController.ToggleSelect(cmd.Context(), app.SessionID, model.RecordID(args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Selection toggled")
			return nil
		},
	}
}

func newUsersSelectPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select-page",
		Short: "Toggle selection of every player on the current page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GridController.TogglePage(cmd.Context(), app.SessionID); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Page selection toggled")
			return nil
		},
	}
}

func newUsersSelectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selected",
		Short: "List selected player IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.GridController.Selected(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(ids)
			return nil
		},
	}
}

func newUsersClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-selection",
		Short: "Deselect every player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GridController.ClearSelection(cmd.Context(), app.SessionID); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Selection cleared")
			return nil
		},
	}
}

func newUsersReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id> <target-id>",
		Short: "Move a player to another player's position in the manual order",
		Long: `Move a player to another player's position in the manual order.

The manual order is what the grid shows when no sort is active. Reordering
while sorted still works, but the change only becomes visible once the
sort is cleared.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.GridController.Reorder(cmd.Context(), app.SessionID, model.RecordID(args[0]), model.RecordID(args[1]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Order updated")
			return nil
		},
	}
}

func newUsersSetRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <id> <role>",
		Short: "Assign a role to one player (PLAYER or MODERATOR)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := app.Pipeline.RoleChange(model.RecordID(args[0]), model.Role(args[1]))
			if err != nil {
				return err
			}

			result := app.Pipeline.Run(cmd.Context(), app.SessionID, op)
			NewOutput(cfg.Output).Print(result)
			return result.Err
		},
	}
}

func newUsersRewardCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "reward <id>",
		Short: "Grant play money to one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow := app.RewardWorkflow
			if err := workflow.Open(model.RecordID(args[0])); err != nil {
				return err
			}
			if cmd.Flags().Changed("amount") {
				if err := workflow.SetAmount(amount); err != nil {
					return err
				}
			}

			result, err := workflow.Submit(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return result.Err
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", reward.DefaultAmount, "Reward amount")

	return cmd
}
