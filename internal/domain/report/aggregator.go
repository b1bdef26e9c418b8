package report

import (
	"sort"

	"barberbook/internal/domain/invoice"
	"barberbook/internal/domain/ledger"
)

// MenuStats is the per-label tally of merged positive lines.
type MenuStats struct {
	Count      int
	GrossMinor int64
}

// BarberTotals summarizes one barber over the aggregated range. HeadCount is
// the number of invoice groups, i.e. completed transactions.
type BarberTotals struct {
	Barber        string
	HeadCount     int
	GrossMinor    int64
	DiscountMinor int64
	NetMinor      int64
	PerMenu       map[string]MenuStats
}

// Totals is a shop-wide sum.
type Totals struct {
	HeadCount     int
	GrossMinor    int64
	DiscountMinor int64
	NetMinor      int64
}

type Summary struct {
	PerBarber map[string]BarberTotals
	Shop      Totals
}

// Aggregate reconstructs per-barber and shop-wide totals from raw ledger
// lines. It is read-only and idempotent: aggregating the same snapshot twice
// yields identical totals. Invoice groups with missing rows (interrupted
// appends) simply under-report their gross; they never fail the run.
func Aggregate(lines []ledger.LineItem, barbers []string) Summary {
	summary := Summary{PerBarber: make(map[string]BarberTotals, len(barbers))}

	for _, barber := range barbers {
		totals := aggregateBarber(lines, barber)
		summary.PerBarber[barber] = totals
		summary.Shop.HeadCount += totals.HeadCount
		summary.Shop.GrossMinor += totals.GrossMinor
		summary.Shop.DiscountMinor += totals.DiscountMinor
		summary.Shop.NetMinor += totals.NetMinor
	}
	return summary
}

func aggregateBarber(lines []ledger.LineItem, barber string) BarberTotals {
	totals := BarberTotals{Barber: barber, PerMenu: make(map[string]MenuStats)}

	groups := make(map[invoice.ID][]ledger.LineItem)
	var order []invoice.ID
	for _, line := range lines {
		if !line.BelongsTo(barber) {
			continue
		}
		id, ok := line.ResolveInvoiceID()
		if !ok {
			// Rows with no resolvable invoice cannot be attributed to a
			// transaction; skip rather than guess.
			continue
		}
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], line)
	}

	for _, id := range order {
		group := groups[id]
		totals.HeadCount++

		var positives []ledger.LineItem
		var discount int64
		for _, line := range group {
			if line.AmountMinor > 0 {
				positives = append(positives, line)
			} else {
				discount += -line.AmountMinor
			}
		}

		var gross int64
		for _, line := range mergeUpgrades(positives) {
			gross += line.AmountMinor
			stats := totals.PerMenu[line.Label]
			stats.Count++
			stats.GrossMinor += line.AmountMinor
			totals.PerMenu[line.Label] = stats
		}

		totals.GrossMinor += gross
		totals.DiscountMinor += discount
		totals.NetMinor += gross - discount
	}
	return totals
}

// mergeUpgrades undoes the two-row upgrade encoding: the marked target line
// absorbs the summed upgrade-fee amounts, its marker is stripped, and the fee
// lines disappear from the output. Without a target the group passes through
// unmodified, so an orphaned fee row stays visible instead of being dropped.
func mergeUpgrades(positives []ledger.LineItem) []ledger.LineItem {
	var feeTotal int64
	targetIdx := -1
	for i, line := range positives {
		if ledger.IsUpgradeFee(line.Label) {
			feeTotal += line.AmountMinor
			continue
		}
		if _, marked := ledger.UpgradeTarget(line.Label); marked && targetIdx < 0 {
			targetIdx = i
		}
	}
	if targetIdx < 0 || feeTotal == 0 {
		return positives
	}

	merged := make([]ledger.LineItem, 0, len(positives))
	for i, line := range positives {
		switch {
		case i == targetIdx:
			label, _ := ledger.UpgradeTarget(line.Label)
			line.Label = label
			line.AmountMinor += feeTotal
			merged = append(merged, line)
		case ledger.IsUpgradeFee(line.Label):
			// absorbed into the target
		default:
			merged = append(merged, line)
		}
	}
	return merged
}

// MenuRanking returns a barber's menu labels ordered by count descending,
// ties broken alphabetically, for report rendering.
func MenuRanking(totals BarberTotals) []string {
	labels := make([]string, 0, len(totals.PerMenu))
	for label := range totals.PerMenu {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := totals.PerMenu[labels[i]], totals.PerMenu[labels[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return labels[i] < labels[j]
	})
	return labels
}
