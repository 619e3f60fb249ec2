package transform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

type SymbolKind string

const (
	SymbolKindOption            SymbolKind = "option"
	SymbolKindDatedFutures      SymbolKind = "futures"
	SymbolKindContinuousFutures SymbolKind = "continuous-futures"
	SymbolKindIndex             SymbolKind = "index"
	SymbolKindEquity            SymbolKind = "equity"
)

func (k SymbolKind) IsFutures() bool {
	return k == SymbolKindDatedFutures || k == SymbolKindContinuousFutures
}

const (
	indexSuffix             = "-INDEX"
	continuousFuturesSuffix = "-I"
	futuresSuffix           = "FUT"
)

// ClassifiedSymbol is the result of deciding what a raw symbol denotes.
// Option carries the parsed components for option symbols;
// FuturesContractMonth carries the first of the contract month for dated
// futures, whose expiry day the caller resolves against the trading calendar.
type ClassifiedSymbol struct {
	Symbol               string
	Kind                 SymbolKind
	Underlying           string
	Option               *marketmodels.OptionSymbolComponents
	FuturesContractMonth time.Time
}

// ClassifySymbol decides the instrument kind of a raw symbol. Suffixes are
// checked before the option parse: -INDEX is a spot index, -I a continuous
// futures series, and SYMBOL{YY}{MMM}FUT a dated futures contract. Anything
// else is tried as an option symbol; only a malformed-symbol failure falls
// back to the plain equity kind, so an unexpected parse error still surfaces.
func ClassifySymbol(symbol string) (*ClassifiedSymbol, error) {
	if strings.HasSuffix(symbol, indexSuffix) {
		return &ClassifiedSymbol{
			Symbol:     symbol,
			Kind:       SymbolKindIndex,
			Underlying: strings.TrimSuffix(symbol, indexSuffix),
		}, nil
	}

	if strings.HasSuffix(symbol, continuousFuturesSuffix) {
		return &ClassifiedSymbol{
			Symbol:     symbol,
			Kind:       SymbolKindContinuousFutures,
			Underlying: strings.TrimSuffix(symbol, continuousFuturesSuffix),
		}, nil
	}

	if strings.HasSuffix(symbol, futuresSuffix) {
		if classified, err := classifyDatedFutures(symbol); err == nil {
			return classified, nil
		}
	}

	components, err := marketmodels.NewOptionSymbolComponents(marketmodels.OptionSymbol(symbol))
	if err == nil {
		return &ClassifiedSymbol{
			Symbol:     symbol,
			Kind:       SymbolKindOption,
			Underlying: components.Underlying,
			Option:     components,
		}, nil
	}

	if !errors.Is(err, marketmodels.MalformedOptionSymbolErr) {
		return nil, fmt.Errorf("ClassifySymbol: %s: %w", symbol, err)
	}

	log.Debugf("ClassifySymbol: %s is not an option symbol, treating as equity", symbol)

	return &ClassifiedSymbol{
		Symbol:     symbol,
		Kind:       SymbolKindEquity,
		Underlying: symbol,
	}, nil
}

// classifyDatedFutures decodes SYMBOL{YY}{MMM}FUT, e.g. NIFTY24MARFUT.
func classifyDatedFutures(symbol string) (*ClassifiedSymbol, error) {
	stem := strings.TrimSuffix(symbol, futuresSuffix)
	if len(stem) <= 5 {
		return nil, fmt.Errorf("classifyDatedFutures: %s: no contract month", symbol)
	}

	contractMonth, err := time.Parse("06Jan", stem[len(stem)-5:])
	if err != nil {
		return nil, fmt.Errorf("classifyDatedFutures: %s: %v", symbol, err)
	}

	return &ClassifiedSymbol{
		Symbol:               symbol,
		Kind:                 SymbolKindDatedFutures,
		Underlying:           stem[:len(stem)-5],
		FuturesContractMonth: contractMonth,
	}, nil
}

// FallbackLotSize is the lot applied to symbols that fail the option parse.
func FallbackLotSize(symbol string) int {
	if strings.Contains(symbol, "NIFTY") {
		return 25
	}

	return 15
}
