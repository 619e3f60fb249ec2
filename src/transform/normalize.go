package transform

import (
	"fmt"
	"sort"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

type barKey struct {
	tsEvent int64
	symbol  string
}

// NormalizeRows converts raw rows to bars, applies the sanitize rule for the
// symbol kind, drops duplicate (timestamp, symbol) pairs keeping the last
// occurrence, and sorts ascending by event time. A row that fails timestamp
// conversion fails the whole batch: raw files are per-session and a bad date
// means the file itself is suspect.
func NormalizeRows(rows []*marketmodels.RawBarRowDTO, kind SymbolKind) ([]*marketmodels.Bar, error) {
	keep := make(map[barKey]*marketmodels.Bar, len(rows))

	for i, row := range rows {
		bar, err := row.ToModel()
		if err != nil {
			return nil, fmt.Errorf("NormalizeRows: row %d: %w", i, err)
		}

		if kind.IsFutures() {
			bar.SanitizeAgainstClose()
		} else {
			bar.Sanitize()
		}

		keep[barKey{tsEvent: bar.TsEvent, symbol: bar.Symbol}] = bar
	}

	bars := make([]*marketmodels.Bar, 0, len(keep))
	for _, bar := range keep {
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool {
		if bars[i].TsEvent != bars[j].TsEvent {
			return bars[i].TsEvent < bars[j].TsEvent
		}

		return bars[i].Symbol < bars[j].Symbol
	})

	return bars, nil
}

// FilterBars keeps bars with startNs <= TsEvent < endNs. Bars are assumed
// sorted; the result preserves order.
func FilterBars(bars []*marketmodels.Bar, startNs, endNs int64) []*marketmodels.Bar {
	var filtered []*marketmodels.Bar
	for _, bar := range bars {
		if bar.TsEvent < startNs {
			continue
		}

		if bar.TsEvent >= endNs {
			break
		}

		filtered = append(filtered, bar)
	}

	return filtered
}
