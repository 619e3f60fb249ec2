package transform

import (
	"sort"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

// DeriveOpenInterest turns a contract's bar stream into open-interest
// records. Bars are sorted by event time before deriving so the change
// column is a true delta against the previous observation; the first
// record's change equals its level.
func DeriveOpenInterest(instrumentID marketmodels.InstrumentID, bars []*marketmodels.Bar) []*marketmodels.OpenInterest {
	sorted := make([]*marketmodels.Bar, len(bars))
	copy(sorted, bars)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TsEvent < sorted[j].TsEvent
	})

	records := make([]*marketmodels.OpenInterest, 0, len(sorted))

	var prev int64
	for _, bar := range sorted {
		records = append(records, &marketmodels.OpenInterest{
			InstrumentID: instrumentID,
			OI:           bar.OI,
			ChangeInOI:   bar.OI - prev,
			TsEvent:      bar.TsEvent,
			TsInit:       bar.TsEvent,
		})

		prev = bar.OI
	}

	return records
}
