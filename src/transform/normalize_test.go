package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/utils"
)

func TestNormalizeRows(t *testing.T) {
	t.Run("sorts by event time", func(t *testing.T) {
		rows := []*marketmodels.RawBarRowDTO{
			{Symbol: "NIFTY-I", Date: 20240102, Time: 34500, Open: 21760, High: 21770, Low: 21755, Close: 21765, Volume: 0, OI: 100},
			{Symbol: "NIFTY-I", Date: 20240102, Time: 33300, Open: 21740, High: 21756, Low: 21732, Close: 21750, Volume: 0, OI: 90},
		}

		bars, err := NormalizeRows(rows, SymbolKindContinuousFutures)
		require.NoError(t, err)
		require.Len(t, bars, 2)

		assert.Equal(t, int64(1704167100000000000), bars[0].TsEvent)
		assert.Equal(t, int64(1704168300000000000), bars[1].TsEvent)
	})

	t.Run("duplicate timestamps keep the last row", func(t *testing.T) {
		rows := []*marketmodels.RawBarRowDTO{
			{Symbol: "NIFTY-INDEX", Date: 20240102, Time: 33300, Close: 21750},
			{Symbol: "NIFTY-INDEX", Date: 20240102, Time: 33300, Close: 21751},
		}

		bars, err := NormalizeRows(rows, SymbolKindIndex)
		require.NoError(t, err)
		require.Len(t, bars, 1)

		assert.Equal(t, 21751.0, bars[0].Close)
	})

	t.Run("sanitize rule follows the symbol kind", func(t *testing.T) {
		rows := []*marketmodels.RawBarRowDTO{
			{Symbol: "NIFTY-I", Date: 20240102, Time: 33300, Open: 120, High: 104, Low: 106, Close: 105, Volume: -5},
		}

		bars, err := NormalizeRows(rows, SymbolKindContinuousFutures)
		require.NoError(t, err)

		// Futures repair against close only; open is left alone.
		assert.Equal(t, 105.0, bars[0].High)
		assert.Equal(t, 105.0, bars[0].Low)
		assert.Equal(t, 120.0, bars[0].Open)
		assert.Equal(t, int64(0), bars[0].Volume)

		bars, err = NormalizeRows(rows, SymbolKindOption)
		require.NoError(t, err)

		// Options repair against open and close.
		assert.Equal(t, 120.0, bars[0].High)
		assert.Equal(t, 105.0, bars[0].Low)
	})

	t.Run("bad row date fails the batch", func(t *testing.T) {
		rows := []*marketmodels.RawBarRowDTO{
			{Symbol: "NIFTY-I", Date: 20240102, Time: 33300},
			{Symbol: "NIFTY-I", Date: 20241332, Time: 33300},
		}

		_, err := NormalizeRows(rows, SymbolKindContinuousFutures)

		assert.ErrorIs(t, err, utils.InvalidDateIntErr)
		assert.Contains(t, err.Error(), "row 1")
	})
}

func TestFilterBars(t *testing.T) {
	bars := []*marketmodels.Bar{
		{TsEvent: 100},
		{TsEvent: 200},
		{TsEvent: 300},
		{TsEvent: 400},
	}

	t.Run("half open range", func(t *testing.T) {
		filtered := FilterBars(bars, 200, 400)

		require.Len(t, filtered, 2)
		assert.Equal(t, int64(200), filtered[0].TsEvent)
		assert.Equal(t, int64(300), filtered[1].TsEvent)
	})

	t.Run("all inside", func(t *testing.T) {
		assert.Len(t, FilterBars(bars, 0, 1000), 4)
	})

	t.Run("none inside", func(t *testing.T) {
		assert.Empty(t, FilterBars(bars, 500, 1000))
	})
}
