package stubapi

import (
	"github.com/arturyumaev/casinodesk/internal/model"
)

// defaultPlayers seeds the ledger with a small roster covering every role.
func defaultPlayers() []model.PlayerRecord {
	return []model.PlayerRecord{
		{ID: "100001", Name: "alice", PlayMoney: 12500, RealMoney: 3.5, Role: model.RoleAdmin},
		{ID: "100002", Name: "bob", PlayMoney: 8200, RealMoney: 0, Role: model.RolePlayer},
		{ID: "100003", Name: "carol", PlayMoney: 450, RealMoney: 12, Role: model.RoleModerator},
		{ID: "100004", Name: "dave", PlayMoney: 98000, RealMoney: 0.2, Role: model.RolePlayer},
		{ID: "100005", Name: "erin", PlayMoney: 1000, RealMoney: 0, Role: model.RolePlayer},
	}
}

// DefaultAssets is the document the service falls back to on reset.
func DefaultAssets() *model.AssetConfig {
	return &model.AssetConfig{
		TableBackgroundURL: "/assets/table-felt.png",
		CardBackURL:        "/assets/card-back.png",
		GodModePassword:    "",

		IconFavicon:     "/assets/icons/favicon.ico",
		IconManifest:    "/assets/icons/manifest.png",
		IconCrypto:      "/assets/icons/crypto.svg",
		IconPlayMoney:   "/assets/icons/play-money.svg",
		IconExit:        "/assets/icons/exit.svg",
		IconSettings:    "/assets/icons/settings.svg",
		IconUsers:       "/assets/icons/users.svg",
		IconDealerChip:  "/assets/icons/dealer-chip.svg",
		IconPokerChip:   "/assets/icons/poker-chip.svg",
		IconSlotMachine: "/assets/icons/slot-machine.svg",
		IconRoulette:    "/assets/icons/roulette.svg",
		IconFold:        "/assets/icons/fold.svg",
		IconCall:        "/assets/icons/call.svg",
		IconRaise:       "/assets/icons/raise.svg",
		IconBank:        "/assets/icons/bank.svg",

		CardFaces: model.CardFaces{},

		SlotSymbols: []model.SlotSymbol{
			{Name: "CHERRY", ImageURL: "/assets/slots/cherry.png", Payout: 10, Weight: 8},
			{Name: "LEMON", ImageURL: "/assets/slots/lemon.png", Payout: 20, Weight: 5},
			{Name: "BELL", ImageURL: "/assets/slots/bell.png", Payout: 50, Weight: 3},
			{Name: "SEVEN", ImageURL: "/assets/slots/seven.png", Payout: 200, Weight: 1},
		},

		LotteryPrizesPlayMoney: []model.LotteryPrize{
			{Label: "Consolation", Multiplier: 50, Weight: 60},
			{Label: "Double", Multiplier: 200, Weight: 30},
			{Label: "Big Win", Multiplier: 1000, Weight: 10},
		},
		LotteryPrizesRealMoney: []model.LotteryPrize{
			{Label: "Small", Multiplier: 120, Weight: 80},
			{Label: "Jackpot", Multiplier: 2000, Weight: 20},
		},

		LotteryTicketPricePlayMoney: 100,
		LotteryTicketPriceRealMoney: 0.5,
	}
}
