package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

func TestDeriveOpenInterest(t *testing.T) {
	instrumentID := marketmodels.InstrumentID("NIFTY25JAN2421000CE.NSE")

	t.Run("sorts before deriving so the deltas are chronological", func(t *testing.T) {
		bars := []*marketmodels.Bar{
			{TsEvent: 300, OI: 90},
			{TsEvent: 100, OI: 100},
			{TsEvent: 200, OI: 150},
		}

		records := DeriveOpenInterest(instrumentID, bars)
		require.Len(t, records, 3)

		assert.Equal(t, int64(100), records[0].TsEvent)
		assert.Equal(t, int64(100), records[0].OI)
		assert.Equal(t, int64(100), records[0].ChangeInOI, "first record's change equals its level")

		assert.Equal(t, int64(150), records[1].OI)
		assert.Equal(t, int64(50), records[1].ChangeInOI)

		assert.Equal(t, int64(90), records[2].OI)
		assert.Equal(t, int64(-60), records[2].ChangeInOI)

		for _, record := range records {
			assert.Equal(t, instrumentID, record.InstrumentID)
			assert.Equal(t, record.TsEvent, record.TsInit)
		}
	})

	t.Run("input order is left untouched", func(t *testing.T) {
		bars := []*marketmodels.Bar{
			{TsEvent: 300, OI: 90},
			{TsEvent: 100, OI: 100},
		}

		DeriveOpenInterest(instrumentID, bars)

		assert.Equal(t, int64(300), bars[0].TsEvent)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, DeriveOpenInterest(instrumentID, nil))
	})
}
