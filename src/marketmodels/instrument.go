package marketmodels

import (
	"fmt"
	"strings"
	"time"
)

const (
	NSEVenue               = "NSE"
	ContractCurrency       = "INR"
	ContractPricePrecision = 2
	ContractPriceIncrement = 0.05
)

const (
	optionActivationDays  = 30
	futuresActivationDays = 90
)

// Continuous futures carry synthetic lifetimes: a far-past activation and a
// far-future expiration.
var (
	continuousActivation = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	continuousExpiration = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// InstrumentID is the venue-qualified identifier, SYMBOL.VENUE.
type InstrumentID string

func NewInstrumentID(symbol, venue string) InstrumentID {
	return InstrumentID(fmt.Sprintf("%s.%s", symbol, venue))
}

func (id InstrumentID) Symbol() string {
	if i := strings.LastIndex(string(id), "."); i >= 0 {
		return string(id)[:i]
	}

	return string(id)
}

func (id InstrumentID) Venue() string {
	if i := strings.LastIndex(string(id), "."); i >= 0 {
		return string(id)[i+1:]
	}

	return ""
}

var indexUnderlyings = map[string]struct{}{
	"NIFTY":      {},
	"BANKNIFTY":  {},
	"FINNIFTY":   {},
	"MIDCPNIFTY": {},
	"SENSEX":     {},
	"BANKEX":     {},
}

// SpotUnderlying maps index underlyings to their spot form. NSE index options
// reference the spot index, not futures: the futures price carries cost of
// carry, while options price off spot.
func SpotUnderlying(underlying string) string {
	if _, isIndex := indexUnderlyings[strings.ToUpper(underlying)]; isIndex {
		return fmt.Sprintf("%s-INDEX", underlying)
	}

	return underlying
}

type OptionContractSpec struct {
	InstrumentID   InstrumentID
	RawSymbol      OptionSymbol
	Underlying     string
	AssetClass     AssetClass
	OptionKind     OptionKind
	StrikePrice    float64
	Currency       string
	PricePrecision int
	PriceIncrement float64
	Multiplier     int
	LotSize        int
	ActivationNs   int64
	ExpirationNs   int64
}

// NewOptionContractSpec builds the tradable descriptor for a parsed option.
// The lot size is auto-detected from the underlying and doubles as the
// multiplier; activation opens 30 days before expiry so the contract is
// live before its final session.
func NewOptionContractSpec(components *OptionSymbolComponents, venue string) *OptionContractSpec {
	lotSize, assetClass := LotSizeFor(components.Underlying)
	expiration := truncateToDateUTC(components.Expiration)

	return &OptionContractSpec{
		InstrumentID:   NewInstrumentID(string(components.Symbol), venue),
		RawSymbol:      components.Symbol,
		Underlying:     SpotUnderlying(components.Underlying),
		AssetClass:     assetClass,
		OptionKind:     components.OptionKind,
		StrikePrice:    components.StrikePrice,
		Currency:       ContractCurrency,
		PricePrecision: ContractPricePrecision,
		PriceIncrement: ContractPriceIncrement,
		Multiplier:     lotSize,
		LotSize:        lotSize,
		ActivationNs:   expiration.AddDate(0, 0, -optionActivationDays).UnixNano(),
		ExpirationNs:   expiration.UnixNano(),
	}
}

type FuturesContractSpec struct {
	InstrumentID   InstrumentID
	RawSymbol      string
	Underlying     string
	AssetClass     AssetClass
	Currency       string
	PricePrecision int
	PriceIncrement float64
	Multiplier     int
	LotSize        int
	ActivationNs   int64
	ExpirationNs   int64
}

// NewFuturesContractSpec builds the descriptor for a dated futures contract,
// activating 90 days before expiry.
func NewFuturesContractSpec(symbol, underlying string, expiry time.Time, venue string) *FuturesContractSpec {
	expiration := truncateToDateUTC(expiry)
	spec := newFuturesContractSpec(symbol, underlying, venue)
	spec.ActivationNs = expiration.AddDate(0, 0, -futuresActivationDays).UnixNano()
	spec.ExpirationNs = expiration.UnixNano()

	return spec
}

// NewContinuousFuturesContractSpec builds the descriptor for a continuous
// (-I suffix) futures series.
func NewContinuousFuturesContractSpec(symbol, underlying string, venue string) *FuturesContractSpec {
	spec := newFuturesContractSpec(symbol, underlying, venue)
	spec.ActivationNs = continuousActivation.UnixNano()
	spec.ExpirationNs = continuousExpiration.UnixNano()

	return spec
}

func newFuturesContractSpec(symbol, underlying string, venue string) *FuturesContractSpec {
	lotSize, assetClass := LotSizeFor(underlying)

	return &FuturesContractSpec{
		InstrumentID:   NewInstrumentID(symbol, venue),
		RawSymbol:      symbol,
		Underlying:     underlying,
		AssetClass:     assetClass,
		Currency:       ContractCurrency,
		PricePrecision: ContractPricePrecision,
		PriceIncrement: ContractPriceIncrement,
		Multiplier:     1,
		LotSize:        lotSize,
	}
}

// EquitySpec is the plain instrument descriptor, used for spot indices and
// as the explicit fallback when an option symbol fails to parse.
type EquitySpec struct {
	InstrumentID   InstrumentID
	RawSymbol      string
	Currency       string
	PricePrecision int
	PriceIncrement float64
	LotSize        int
}

func NewEquitySpec(symbol string, lotSize int, venue string) *EquitySpec {
	return &EquitySpec{
		InstrumentID:   NewInstrumentID(symbol, venue),
		RawSymbol:      symbol,
		Currency:       ContractCurrency,
		PricePrecision: ContractPricePrecision,
		PriceIncrement: ContractPriceIncrement,
		LotSize:        lotSize,
	}
}

func truncateToDateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
