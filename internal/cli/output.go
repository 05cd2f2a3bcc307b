package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/mutation"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *grid.GridView:
		o.printGridView(v)
	case []model.PlayerRecord:
		o.printRecords(v)
	case []model.RecordID:
		o.printRecordIDs(v)
	case *stats.Summary:
		o.printSummary(v)
	case []model.Notification:
		o.printNotifications(v)
	case *model.AssetDraft:
		o.printDraft(v)
	case mutation.Result:
		o.printMutationResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGridView(v *grid.GridView) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEL\tID\tNAME\tPLAY MONEY\tREAL MONEY\tROLE")
	for _, r := range v.Page.Rows {
		mark := " "
		if v.Selected[r.ID] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.2f\t%s\n", mark, r.ID, r.Name, r.PlayMoney, r.RealMoney, r.Role)
	}
	_ = w.Flush()

	fmt.Printf("Page %d/%d, %d players", v.Page.PageIndex+1, v.Page.PageCount, v.Page.TotalRows)
	if v.Spec.SortKey != "" {
		dir := "asc"
		if v.Spec.SortDesc {
			dir = "desc"
		}
		fmt.Printf(", sorted by %s %s", v.Spec.SortKey, dir)
	}
	fmt.Println()
}

func (o *Output) printRecords(records []model.PlayerRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPLAY MONEY\tREAL MONEY\tROLE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.2f\t%s\n", r.ID, r.Name, r.PlayMoney, r.RealMoney, r.Role)
	}
	_ = w.Flush()
}

func (o *Output) printRecordIDs(ids []model.RecordID) {
	if len(ids) == 0 {
		fmt.Println("No records selected")
		return
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}

func (o *Output) printSummary(s *stats.Summary) {
	fmt.Printf("Players:    %d\n", s.TotalPlayers)
	fmt.Printf("Play money: %.0f\n", s.TotalPlayMoney)
	fmt.Printf("Real money: %.2f\n", s.TotalRealMoney)
	for role, count := range s.RoleCounts {
		fmt.Printf("  %s: %d\n", role, count)
	}
	if s.Richest != nil {
		fmt.Printf("Richest:    %s (%.0f)\n", s.Richest.Name, s.Richest.PlayMoney)
	}
}

func (o *Output) printNotifications(notifications []model.Notification) {
	if len(notifications) == 0 {
		fmt.Println("No notifications")
		return
	}
	for _, n := range notifications {
		fmt.Printf("[%s] %-8s %s\n", n.CreatedAt.Format("15:04:05"), n.Kind, n.Message)
	}
}

func (o *Output) printDraft(d *model.AssetDraft) {
	state := "clean"
	if d.Dirty {
		state = "modified"
	}
	fmt.Printf("Asset draft (%s)\n", state)
	fmt.Printf("Table background:  %s\n", d.Doc.TableBackgroundURL)
	fmt.Printf("Card back:         %s\n", d.Doc.CardBackURL)

	fmt.Println("Icons:")
	for _, key := range model.IconKeys {
		url, _ := d.Doc.Icon(key)
		fmt.Printf("  %-16s %s\n", key, url)
	}

	fmt.Printf("Slot symbols (%d):\n", len(d.Doc.SlotSymbols))
	for i, sym := range d.Doc.SlotSymbols {
		fmt.Printf("  %s  %-10s payout=%.0f weight=%.0f\n", d.Elements.Symbols[i], sym.Name, sym.Payout, sym.Weight)
	}

	fmt.Printf("Lottery (play money, ticket %.0f):\n", d.Doc.LotteryTicketPricePlayMoney)
	for i, p := range d.Doc.LotteryPrizesPlayMoney {
		fmt.Printf("  %s  %-14s x%.0f%% weight=%.0f\n", d.Elements.EasyPrizes[i], p.Label, p.Multiplier, p.Weight)
	}
	fmt.Printf("Lottery (real money, ticket %.2f):\n", d.Doc.LotteryTicketPriceRealMoney)
	for i, p := range d.Doc.LotteryPrizesRealMoney {
		fmt.Printf("  %s  %-14s x%.0f%% weight=%.0f\n", d.Elements.HardPrizes[i], p.Label, p.Multiplier, p.Weight)
	}
}

func (o *Output) printMutationResult(r mutation.Result) {
	if r.Status == mutation.StatusSucceeded {
		fmt.Println("OK")
		return
	}
	fmt.Printf("Failed: %s\n", r.Err)
}
