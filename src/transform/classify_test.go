package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

func TestClassifySymbol(t *testing.T) {
	t.Run("spot index", func(t *testing.T) {
		classified, err := ClassifySymbol("NIFTY-INDEX")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindIndex, classified.Kind)
		assert.Equal(t, "NIFTY", classified.Underlying)
		assert.False(t, classified.Kind.IsFutures())
	})

	t.Run("continuous futures", func(t *testing.T) {
		classified, err := ClassifySymbol("BANKNIFTY-I")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindContinuousFutures, classified.Kind)
		assert.Equal(t, "BANKNIFTY", classified.Underlying)
		assert.True(t, classified.Kind.IsFutures())
	})

	t.Run("dated futures", func(t *testing.T) {
		classified, err := ClassifySymbol("NIFTY24MARFUT")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindDatedFutures, classified.Kind)
		assert.Equal(t, "NIFTY", classified.Underlying)
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), classified.FuturesContractMonth)
		assert.True(t, classified.Kind.IsFutures())
	})

	t.Run("option", func(t *testing.T) {
		classified, err := ClassifySymbol("NIFTY25JAN2421000CE")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindOption, classified.Kind)
		assert.Equal(t, "NIFTY", classified.Underlying)
		require.NotNil(t, classified.Option)
		assert.Equal(t, marketmodels.Call, classified.Option.OptionKind)
		assert.Equal(t, 21000.0, classified.Option.StrikePrice)
	})

	t.Run("unparseable symbol falls back to equity", func(t *testing.T) {
		classified, err := ClassifySymbol("RELIANCE")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindEquity, classified.Kind)
		assert.Equal(t, "RELIANCE", classified.Underlying)
		assert.Nil(t, classified.Option)
	})

	t.Run("FUT suffix without a contract month falls back", func(t *testing.T) {
		classified, err := ClassifySymbol("GOLDFUT")
		require.NoError(t, err)

		assert.Equal(t, SymbolKindEquity, classified.Kind)
	})
}

func TestFallbackLotSize(t *testing.T) {
	assert.Equal(t, 25, FallbackLotSize("NIFTY2024BADSYMBOL"))
	assert.Equal(t, 25, FallbackLotSize("FINNIFTYXYZ"))
	assert.Equal(t, 15, FallbackLotSize("RELIANCE"))
}
