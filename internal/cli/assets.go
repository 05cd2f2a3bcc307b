package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arturyumaev/casinodesk/internal/model"
)

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Asset configuration draft commands",
		Long: `Asset configuration draft commands.

Edits accumulate in a session draft and only reach the server on save.
Pull a fresh draft first; save or reset when done.`,
	}

	cmd.AddCommand(newAssetsPullCmd())
	cmd.AddCommand(newAssetsShowCmd())
	cmd.AddCommand(newAssetsSetCmd())
	cmd.AddCommand(newAssetsSetIconCmd())
	cmd.AddCommand(newAssetsSetCardFaceCmd())
	cmd.AddCommand(newAssetsSetTicketPriceCmd())
	cmd.AddCommand(newAssetsSymbolCmd())
	cmd.AddCommand(newAssetsPrizeCmd())
	cmd.AddCommand(newAssetsSaveCmd())
	cmd.AddCommand(newAssetsResetCmd())
	cmd.AddCommand(newAssetsDiscardCmd())

	return cmd
}

func newAssetsPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the server document and start a fresh draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := app.AssetEditor.Load(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(draft)
			return nil
		},
	}
}

func newAssetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the session's current draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := app.AssetEditor.Draft(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(draft)
			return nil
		},
	}
}

func newAssetsSetCmd() *cobra.Command {
	var tableBackground, cardBack, godModePassword string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit top-level draft fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessionID := app.SessionID

			if cmd.Flags().Changed("table-background") {
				if err := app.AssetEditor.SetTableBackground(ctx, sessionID, tableBackground); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("card-back") {
				if err := app.AssetEditor.SetCardBack(ctx, sessionID, cardBack); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("god-mode-password") {
				if err := app.AssetEditor.SetGodModePassword(ctx, sessionID, godModePassword); err != nil {
					return err
				}
			}

			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&tableBackground, "table-background", "", "Table background image URL")
	cmd.Flags().StringVar(&cardBack, "card-back", "", "Card back image URL")
	cmd.Flags().StringVar(&godModePassword, "god-mode-password", "", "God mode password")

	return cmd
}

func newAssetsSetIconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-icon <key> <url>",
		Short: "Edit one icon URL (e.g. iconFavicon, iconBank)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.AssetEditor.SetIcon(cmd.Context(), app.SessionID, model.IconKey(args[0]), args[1]); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}
}

func newAssetsSetCardFaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-card-face <suit> <rank> [url]",
		Short: "Edit one card face cell; omit the URL to clear it",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 3 {
				url = args[2]
			}

			err := app.AssetEditor.SetCardFace(cmd.Context(), app.SessionID, model.Suit(args[0]), model.Rank(args[1]), url)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}
}

func newAssetsSetTicketPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-ticket-price <tier> <price>",
		Short: "Edit a lottery ticket price (tier: easy, hard)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}

			err = app.AssetEditor.SetTicketPrice(cmd.Context(), app.SessionID, model.PrizeTier(args[0]), price)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}
}

func newAssetsSymbolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbol",
		Short: "Slot symbol list commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append a new symbol row",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.AssetEditor.AddSymbol(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Added symbol " + id)
			return nil
		},
	})

	var name, imageURL string
	var payout, weight float64
	updateCmd := &cobra.Command{
		Use:   "update <element-id>",
		Short: "Replace a symbol row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := model.SlotSymbol{Name: name, ImageURL: imageURL, Payout: payout, Weight: weight}
			if err := app.AssetEditor.UpdateSymbol(cmd.Context(), app.SessionID, args[0], symbol); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&name, "name", "", "Symbol name")
	updateCmd.Flags().StringVar(&imageURL, "image", "", "Symbol image URL")
	updateCmd.Flags().Float64Var(&payout, "payout", 0, "Win multiplier")
	updateCmd.Flags().Float64Var(&weight, "weight", 0, "Selection weight")
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <element-id>",
		Short: "Remove a symbol row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.AssetEditor.RemoveSymbol(cmd.Context(), app.SessionID, args[0]); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	})

	return cmd
}

func newAssetsPrizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prize",
		Short: "Lottery prize list commands (tier: easy, hard)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <tier>",
		Short: "Append a new prize row to a tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.AssetEditor.AddPrize(cmd.Context(), app.SessionID, model.PrizeTier(args[0]))
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Added prize " + id)
			return nil
		},
	})

	var label string
	var multiplier, weight float64
	updateCmd := &cobra.Command{
		Use:   "update <tier> <element-id>",
		Short: "Replace a prize row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prize := model.LotteryPrize{Label: label, Multiplier: multiplier, Weight: weight}
			err := app.AssetEditor.UpdatePrize(cmd.Context(), app.SessionID, model.PrizeTier(args[0]), args[1], prize)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&label, "label", "", "Prize label")
	updateCmd.Flags().Float64Var(&multiplier, "multiplier", 0, "Payout as a percentage of the ticket price")
	updateCmd.Flags().Float64Var(&weight, "weight", 0, "Selection weight")
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <tier> <element-id>",
		Short: "Remove a prize row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.AssetEditor.RemovePrize(cmd.Context(), app.SessionID, model.PrizeTier(args[0]), args[1])
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft updated")
			return nil
		},
	})

	return cmd
}

func newAssetsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Submit the draft to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := app.AssetEditor.Save(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(draft)
			return nil
		},
	}
}

func newAssetsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the server's default document",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := app.AssetEditor.Reset(cmd.Context(), app.SessionID)
			if err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(draft)
			return nil
		},
	}
}

func newAssetsDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Drop the session's draft without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.AssetEditor.Discard(cmd.Context(), app.SessionID); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Draft discarded")
			return nil
		},
	}
}
