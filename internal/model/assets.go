package model

// Suit is a card suit. The enumeration is fixed and exhaustive.
type Suit string

const (
	SuitSpades   Suit = "SPADES"
	SuitHearts   Suit = "HEARTS"
	SuitClubs    Suit = "CLUBS"
	SuitDiamonds Suit = "DIAMONDS"
)

// SuitOrder is the display order used by the console and the game client.
var SuitOrder = []Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}

// Rank is a card rank. The enumeration is fixed and exhaustive.
type Rank string

const (
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "T"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
)

// RankOrder is the display order, ace high.
var RankOrder = []Rank{
	RankAce, RankKing, RankQueen, RankJack, RankTen, RankNine, RankEight,
	RankSeven, RankSix, RankFive, RankFour, RankThree, RankTwo,
}

// ValidSuit reports whether s is one of the four suits.
func ValidSuit(s Suit) bool {
	switch s {
	case SuitSpades, SuitHearts, SuitClubs, SuitDiamonds:
		return true
	}
	return false
}

// ValidRank reports whether r is one of the thirteen ranks.
func ValidRank(r Rank) bool {
	for _, known := range RankOrder {
		if r == known {
			return true
		}
	}
	return false
}

// IconKey names one of the recognized icon roles in the asset document.
type IconKey string

const (
	IconFavicon     IconKey = "iconFavicon"
	IconManifest    IconKey = "iconManifest"
	IconCrypto      IconKey = "iconCrypto"
	IconPlayMoney   IconKey = "iconPlayMoney"
	IconExit        IconKey = "iconExit"
	IconSettings    IconKey = "iconSettings"
	IconUsers       IconKey = "iconUsers"
	IconDealerChip  IconKey = "iconDealerChip"
	IconPokerChip   IconKey = "iconPokerChip"
	IconSlotMachine IconKey = "iconSlotMachine"
	IconRoulette    IconKey = "iconRoulette"
	IconFold        IconKey = "iconFold"
	IconCall        IconKey = "iconCall"
	IconRaise       IconKey = "iconRaise"
	IconBank        IconKey = "iconBank"
)

// IconKeys is the closed set of icon roles, in display order.
var IconKeys = []IconKey{
	IconFavicon, IconManifest, IconCrypto, IconPlayMoney, IconExit,
	IconSettings, IconUsers, IconDealerChip, IconPokerChip, IconSlotMachine,
	IconRoulette, IconFold, IconCall, IconRaise, IconBank,
}

// ValidIconKey reports whether k is a recognized icon role.
func ValidIconKey(k IconKey) bool {
	for _, known := range IconKeys {
		if k == known {
			return true
		}
	}
	return false
}

// SlotSymbol is one reel symbol. List order is display and payout-priority
// order. Payout is a win multiplier, Weight a relative selection frequency.
type SlotSymbol struct {
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Payout   float64 `json:"payout"`
	Weight   float64 `json:"weight"`
}

// LotteryPrize is one prize tier entry. Multiplier is a percentage of the
// ticket price, Weight a relative selection frequency.
type LotteryPrize struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	Weight     float64 `json:"weight"`
}

// PrizeTier selects one of the two lottery prize tables.
type PrizeTier string

const (
	// TierEasy pays out in play money.
	TierEasy PrizeTier = "easy"
	// TierHard pays out in real money (TON).
	TierHard PrizeTier = "hard"
)

// ValidPrizeTier reports whether t names a prize table.
func ValidPrizeTier(t PrizeTier) bool {
	return t == TierEasy || t == TierHard
}

// CardFaces maps suit -> rank -> image URL. Cells are optional; an absent
// entry means the client falls back to a blank face.
type CardFaces map[Suit]map[Rank]string

// Get returns the URL for a cell, or "" if absent.
func (f CardFaces) Get(s Suit, r Rank) string {
	if f == nil {
		return ""
	}
	return f[s][r]
}

// AssetConfig is the single versionless document describing game visual and
// economic assets. The server is the sole source of truth; the console holds
// at most one draft of it at a time. The JSON field names are the service's
// wire format and must not change.
type AssetConfig struct {
	TableBackgroundURL string `json:"tableBackgroundUrl"`
	CardBackURL        string `json:"cardBackUrl"`
	GodModePassword    string `json:"godModePassword"`

	IconFavicon     string `json:"iconFavicon"`
	IconManifest    string `json:"iconManifest"`
	IconCrypto      string `json:"iconCrypto"`
	IconPlayMoney   string `json:"iconPlayMoney"`
	IconExit        string `json:"iconExit"`
	IconSettings    string `json:"iconSettings"`
	IconUsers       string `json:"iconUsers"`
	IconDealerChip  string `json:"iconDealerChip"`
	IconPokerChip   string `json:"iconPokerChip"`
	IconSlotMachine string `json:"iconSlotMachine"`
	IconRoulette    string `json:"iconRoulette"`
	IconFold        string `json:"iconFold"`
	IconCall        string `json:"iconCall"`
	IconRaise       string `json:"iconRaise"`
	IconBank        string `json:"iconBank"`

	CardFaces CardFaces `json:"cardFaces"`

	SlotSymbols []SlotSymbol `json:"slotSymbols"`

	LotteryPrizesPlayMoney []LotteryPrize `json:"lotteryPrizesPlayMoney"`
	LotteryPrizesRealMoney []LotteryPrize `json:"lotteryPrizesRealMoney"`

	LotteryTicketPricePlayMoney float64 `json:"lotteryTicketPricePlayMoney"`
	LotteryTicketPriceRealMoney float64 `json:"lotteryTicketPriceRealMoney"`
}

// Icon returns the URL stored under the given icon role.
func (c *AssetConfig) Icon(k IconKey) (string, error) {
	switch k {
	case IconFavicon:
		return c.IconFavicon, nil
	case IconManifest:
		return c.IconManifest, nil
	case IconCrypto:
		return c.IconCrypto, nil
	case IconPlayMoney:
		return c.IconPlayMoney, nil
	case IconExit:
		return c.IconExit, nil
	case IconSettings:
		return c.IconSettings, nil
	case IconUsers:
		return c.IconUsers, nil
	case IconDealerChip:
		return c.IconDealerChip, nil
	case IconPokerChip:
		return c.IconPokerChip, nil
	case IconSlotMachine:
		return c.IconSlotMachine, nil
	case IconRoulette:
		return c.IconRoulette, nil
	case IconFold:
		return c.IconFold, nil
	case IconCall:
		return c.IconCall, nil
	case IconRaise:
		return c.IconRaise, nil
	case IconBank:
		return c.IconBank, nil
	}
	return "", ErrUnknownIconKey
}

// SetIcon writes the URL for the given icon role. Unlike player roles,
// unknown icon keys are an error, not a passthrough.
func (c *AssetConfig) SetIcon(k IconKey, url string) error {
	switch k {
	case IconFavicon:
		c.IconFavicon = url
	case IconManifest:
		c.IconManifest = url
	case IconCrypto:
		c.IconCrypto = url
	case IconPlayMoney:
		c.IconPlayMoney = url
	case IconExit:
		c.IconExit = url
	case IconSettings:
		c.IconSettings = url
	case IconUsers:
		c.IconUsers = url
	case IconDealerChip:
		c.IconDealerChip = url
	case IconPokerChip:
		c.IconPokerChip = url
	case IconSlotMachine:
		c.IconSlotMachine = url
	case IconRoulette:
		c.IconRoulette = url
	case IconFold:
		c.IconFold = url
	case IconCall:
		c.IconCall = url
	case IconRaise:
		c.IconRaise = url
	case IconBank:
		c.IconBank = url
	default:
		return ErrUnknownIconKey
	}
	return nil
}

// Clone returns a deep copy of the document. Edits in the draft editor
// operate on clones so the previous draft stays referentially untouched.
func (c *AssetConfig) Clone() *AssetConfig {
	out := *c

	if c.CardFaces != nil {
		faces := make(CardFaces, len(c.CardFaces))
		for suit, ranks := range c.CardFaces {
			inner := make(map[Rank]string, len(ranks))
			for rank, url := range ranks {
				inner[rank] = url
			}
			faces[suit] = inner
		}
		out.CardFaces = faces
	}

	if c.SlotSymbols != nil {
		out.SlotSymbols = make([]SlotSymbol, len(c.SlotSymbols))
		copy(out.SlotSymbols, c.SlotSymbols)
	}
	if c.LotteryPrizesPlayMoney != nil {
		out.LotteryPrizesPlayMoney = make([]LotteryPrize, len(c.LotteryPrizesPlayMoney))
		copy(out.LotteryPrizesPlayMoney, c.LotteryPrizesPlayMoney)
	}
	if c.LotteryPrizesRealMoney != nil {
		out.LotteryPrizesRealMoney = make([]LotteryPrize, len(c.LotteryPrizesRealMoney))
		copy(out.LotteryPrizesRealMoney, c.LotteryPrizesRealMoney)
	}

	return &out
}
