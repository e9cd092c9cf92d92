package timeline

import (
	"math"
	"sort"

	"lifelens/domain/core"
	"lifelens/domain/signal"
)

// DailyAggregate collapses every transaction on one calendar day into a
// single row. Invariant: TotalSpend == Needs + Wants, and income never
// contributes to TotalSpend.
type DailyAggregate struct {
	Date       core.DateKey `json:"date"`
	Income     float64      `json:"income"`
	Needs      float64      `json:"needs"`
	Wants      float64      `json:"wants"`
	TotalSpend float64      `json:"total_spend"`
	Count      int          `json:"count"`
}

// AggregateDaily groups a raw transaction list (ordered or not) into one
// aggregate per date, ascending by date. Zero-amount transactions still
// count toward Count and their bucket.
func AggregateDaily(txs []signal.Transaction) []DailyAggregate {
	byDate := make(map[core.DateKey]*DailyAggregate)

	for _, t := range txs {
		agg, ok := byDate[t.Date]
		if !ok {
			agg = &DailyAggregate{Date: t.Date}
			byDate[t.Date] = agg
		}
		agg.Count++

		if t.IsIncome() {
			agg.Income += math.Abs(t.Amount)
			continue
		}

		if t.IsNeeds() {
			agg.Needs += t.Amount
		} else {
			agg.Wants += t.Amount
		}
		agg.TotalSpend += t.Amount
	}

	out := make([]DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		out = append(out, *agg)
	}
	// Lexical sort is chronological for ISO date keys.
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
