package marketmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLotSizeFor(t *testing.T) {
	t.Run("index underlyings", func(t *testing.T) {
		testCases := []struct {
			underlying string
			lotSize    int
		}{
			{"NIFTY", 25},
			{"BANKNIFTY", 15},
			{"FINNIFTY", 25},
			{"MIDCPNIFTY", 50},
			{"SENSEX", 10},
			{"BANKEX", 15},
		}

		for _, tc := range testCases {
			lotSize, assetClass := LotSizeFor(tc.underlying)
			assert.Equal(t, tc.lotSize, lotSize)
			assert.Equal(t, AssetClassEquity, assetClass)
		}
	})

	t.Run("commodity underlyings", func(t *testing.T) {
		testCases := []struct {
			underlying string
			lotSize    int
		}{
			{"CRUDEOIL", 100},
			{"NATURALGAS", 1250},
			{"GOLD", 100},
			{"SILVER", 30},
			{"COPPER", 1000},
			{"ZINC", 1000},
			{"LEAD", 1000},
			{"ALUMINIUM", 1000},
			{"NICKEL", 250},
		}

		for _, tc := range testCases {
			lotSize, assetClass := LotSizeFor(tc.underlying)
			assert.Equal(t, tc.lotSize, lotSize)
			assert.Equal(t, AssetClassCommodity, assetClass)
		}
	})

	t.Run("lookup is upper-cased", func(t *testing.T) {
		lotSize, assetClass := LotSizeFor("nifty")
		assert.Equal(t, 25, lotSize)
		assert.Equal(t, AssetClassEquity, assetClass)
	})

	t.Run("unknown underlying defaults", func(t *testing.T) {
		lotSize, assetClass := LotSizeFor("RELIANCE")
		assert.Equal(t, DefaultLotSize, lotSize)
		assert.Equal(t, AssetClassEquity, assetClass)
	})
}
