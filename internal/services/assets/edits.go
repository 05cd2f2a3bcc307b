package assets

import (
	"context"
	"errors"

	"github.com/arturyumaev/casinodesk/internal/model"
)

// New-element defaults, matching what the game client seeds for a blank row.
var (
	defaultSymbol = model.SlotSymbol{Name: "NEW", ImageURL: "", Payout: 10, Weight: 1}
	defaultPrize  = model.LotteryPrize{Label: "New Prize", Multiplier: 100, Weight: 10}
)

// edit applies one change to the draft. The document is cloned first, so a
// failed apply leaves the stored draft untouched and concurrent readers
// never see a half-applied edit.
func (e *Editor) edit(ctx context.Context, sessionID model.SessionID, apply func(d *model.AssetDraft) error) error {
	draft, err := e.storage.GetDraft(ctx, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrDraftNotFound) {
			return model.ErrNoDraft
		}
		return err
	}

	next := *draft
	next.Doc = draft.Doc.Clone()
	next.Elements = model.ElementIDs{
		Symbols:    append([]string(nil), draft.Elements.Symbols...),
		EasyPrizes: append([]string(nil), draft.Elements.EasyPrizes...),
		HardPrizes: append([]string(nil), draft.Elements.HardPrizes...),
	}

	if err := apply(&next); err != nil {
		return err
	}

	next.Dirty = true
	next.UpdatedAt = e.clock.Now()
	return e.storage.SaveDraft(ctx, &next)
}

// SetTableBackground replaces the table background image URL.
func (e *Editor) SetTableBackground(ctx context.Context, sessionID model.SessionID, url string) error {
	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		d.Doc.TableBackgroundURL = url
		return nil
	})
}

// SetCardBack replaces the card back image URL.
func (e *Editor) SetCardBack(ctx context.Context, sessionID model.SessionID, url string) error {
	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		d.Doc.CardBackURL = url
		return nil
	})
}

// SetGodModePassword replaces the god mode password.
func (e *Editor) SetGodModePassword(ctx context.Context, sessionID model.SessionID, password string) error {
	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		d.Doc.GodModePassword = password
		return nil
	})
}

// SetIcon replaces the URL under one icon role.
func (e *Editor) SetIcon(ctx context.Context, sessionID model.SessionID, key model.IconKey, url string) error {
	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		return d.Doc.SetIcon(key, url)
	})
}

// SetCardFace replaces one cell of the card face grid. An empty URL clears
// the cell, falling back to the client's blank face.
func (e *Editor) SetCardFace(ctx context.Context, sessionID model.SessionID, suit model.Suit, rank model.Rank, url string) error {
	if !model.ValidSuit(suit) {
		return model.ErrInvalidSuit
	}
	if !model.ValidRank(rank) {
		return model.ErrInvalidRank
	}

	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		if d.Doc.CardFaces == nil {
			d.Doc.CardFaces = make(model.CardFaces)
		}
		if d.Doc.CardFaces[suit] == nil {
			d.Doc.CardFaces[suit] = make(map[model.Rank]string)
		}
		if url == "" {
			delete(d.Doc.CardFaces[suit], rank)
		} else {
			d.Doc.CardFaces[suit][rank] = url
		}
		return nil
	})
}

// SetTicketPrice replaces the lottery ticket price for one tier.
func (e *Editor) SetTicketPrice(ctx context.Context, sessionID model.SessionID, tier model.PrizeTier, price float64) error {
	if !model.ValidPrizeTier(tier) {
		return model.ErrInvalidPrizeTier
	}
	if price < 0 {
		return model.ErrNegativeValue
	}

	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		if tier == model.TierEasy {
			d.Doc.LotteryTicketPricePlayMoney = price
		} else {
			d.Doc.LotteryTicketPriceRealMoney = price
		}
		return nil
	})
}

// Slot symbol list edits

// AddSymbol appends a default symbol row and returns its element ID.
func (e *Editor) AddSymbol(ctx context.Context, sessionID model.SessionID) (string, error) {
	id := e.mintID()
	err := e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		d.Doc.SlotSymbols = append(d.Doc.SlotSymbols, defaultSymbol)
		d.Elements.Symbols = append(d.Elements.Symbols, id)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateSymbol replaces the symbol addressed by an element ID.
func (e *Editor) UpdateSymbol(ctx context.Context, sessionID model.SessionID, elementID string, symbol model.SlotSymbol) error {
	if symbol.Payout < 0 || symbol.Weight < 0 {
		return model.ErrNegativeValue
	}

	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		i := indexOf(d.Elements.Symbols, elementID)
		if i < 0 {
			return model.ErrElementNotFound
		}
		d.Doc.SlotSymbols[i] = symbol
		return nil
	})
}

// RemoveSymbol deletes the symbol addressed by an element ID. Remaining
// elements keep their IDs, so later edits still land on the right rows.
func (e *Editor) RemoveSymbol(ctx context.Context, sessionID model.SessionID, elementID string) error {
	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		i := indexOf(d.Elements.Symbols, elementID)
		if i < 0 {
			return model.ErrElementNotFound
		}
		d.Doc.SlotSymbols = append(d.Doc.SlotSymbols[:i], d.Doc.SlotSymbols[i+1:]...)
		d.Elements.Symbols = append(d.Elements.Symbols[:i], d.Elements.Symbols[i+1:]...)
		return nil
	})
}

// Lottery prize list edits

// AddPrize appends a default prize row to one tier and returns its element ID.
func (e *Editor) AddPrize(ctx context.Context, sessionID model.SessionID, tier model.PrizeTier) (string, error) {
	if !model.ValidPrizeTier(tier) {
		return "", model.ErrInvalidPrizeTier
	}

	id := e.mintID()
	err := e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		if tier == model.TierEasy {
			d.Doc.LotteryPrizesPlayMoney = append(d.Doc.LotteryPrizesPlayMoney, defaultPrize)
			d.Elements.EasyPrizes = append(d.Elements.EasyPrizes, id)
		} else {
			d.Doc.LotteryPrizesRealMoney = append(d.Doc.LotteryPrizesRealMoney, defaultPrize)
			d.Elements.HardPrizes = append(d.Elements.HardPrizes, id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdatePrize replaces the prize addressed by an element ID in one tier.
func (e *Editor) UpdatePrize(ctx context.Context, sessionID model.SessionID, tier model.PrizeTier, elementID string, prize model.LotteryPrize) error {
	if !model.ValidPrizeTier(tier) {
		return model.ErrInvalidPrizeTier
	}
	if prize.Multiplier < 0 || prize.Weight < 0 {
		return model.ErrNegativeValue
	}

	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		ids, prizes := tierLists(d, tier)
		i := indexOf(ids, elementID)
		if i < 0 {
			return model.ErrElementNotFound
		}
		prizes[i] = prize
		return nil
	})
}

// RemovePrize deletes the prize addressed by an element ID in one tier.
func (e *Editor) RemovePrize(ctx context.Context, sessionID model.SessionID, tier model.PrizeTier, elementID string) error {
	if !model.ValidPrizeTier(tier) {
		return model.ErrInvalidPrizeTier
	}

	return e.edit(ctx, sessionID, func(d *model.AssetDraft) error {
		if tier == model.TierEasy {
			i := indexOf(d.Elements.EasyPrizes, elementID)
			if i < 0 {
				return model.ErrElementNotFound
			}
			d.Doc.LotteryPrizesPlayMoney = append(d.Doc.LotteryPrizesPlayMoney[:i], d.Doc.LotteryPrizesPlayMoney[i+1:]...)
			d.Elements.EasyPrizes = append(d.Elements.EasyPrizes[:i], d.Elements.EasyPrizes[i+1:]...)
			return nil
		}

		i := indexOf(d.Elements.HardPrizes, elementID)
		if i < 0 {
			return model.ErrElementNotFound
		}
		d.Doc.LotteryPrizesRealMoney = append(d.Doc.LotteryPrizesRealMoney[:i], d.Doc.LotteryPrizesRealMoney[i+1:]...)
		d.Elements.HardPrizes = append(d.Elements.HardPrizes[:i], d.Elements.HardPrizes[i+1:]...)
		return nil
	})
}

// tierLists returns the element IDs and prize list for a tier. The prize
// slice is returned for in-place element replacement only.
func tierLists(d *model.AssetDraft, tier model.PrizeTier) ([]string, []model.LotteryPrize) {
	if tier == model.TierEasy {
		return d.Elements.EasyPrizes, d.Doc.LotteryPrizesPlayMoney
	}
	return d.Elements.HardPrizes, d.Doc.LotteryPrizesRealMoney
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
