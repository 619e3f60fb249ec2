package marketmodels

import "strings"

// NSE lot sizes per underlying, as of 2024. Unknown underlyings fall back to
// DefaultLotSize with asset class equity.
var nseLotSizes = map[string]int{
	// index futures/options
	"NIFTY":      25,
	"BANKNIFTY":  15,
	"FINNIFTY":   25,
	"MIDCPNIFTY": 50,
	"SENSEX":     10,
	"BANKEX":     15,

	// commodity futures/options
	"CRUDEOIL":   100,
	"NATURALGAS": 1250,
	"GOLD":       100,
	"SILVER":     30,
	"COPPER":     1000,
	"ZINC":       1000,
	"LEAD":       1000,
	"ALUMINIUM":  1000,
	"NICKEL":     250,
}

var commodityUnderlyings = map[string]struct{}{
	"CRUDEOIL":   {},
	"NATURALGAS": {},
	"GOLD":       {},
	"SILVER":     {},
	"COPPER":     {},
	"ZINC":       {},
	"LEAD":       {},
	"ALUMINIUM":  {},
	"NICKEL":     {},
}

const DefaultLotSize = 1

// LotSizeFor looks up the lot size and asset class for an underlying. The
// lookup is upper-cased; everything that is not a known commodity is equity,
// indices included.
func LotSizeFor(underlying string) (int, AssetClass) {
	key := strings.ToUpper(underlying)

	lotSize, found := nseLotSizes[key]
	if !found {
		lotSize = DefaultLotSize
	}

	if _, isCommodity := commodityUnderlyings[key]; isCommodity {
		return lotSize, AssetClassCommodity
	}

	return lotSize, AssetClassEquity
}
