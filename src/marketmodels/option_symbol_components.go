package marketmodels

import (
	"fmt"
	"strconv"
	"time"
)

type OptionSymbol string

// OptionSymbolComponents holds the parsed attributes of an NSE option symbol.
type OptionSymbolComponents struct {
	Underlying  string
	Expiration  time.Time
	OptionKind  OptionKind
	StrikePrice float64
	Symbol      OptionSymbol
}

// NSE option symbols are fixed-position, decoded from the right:
// {UNDERLYING}{DDMMMYY}{STRIKE:5}{CE|PE}, e.g. BANKNIFTY28OCT2548000CE.
const (
	kindCodeWidth   = 2
	strikeWidth     = 5
	expiryDateWidth = 7

	minOptionSymbolLen = kindCodeWidth + strikeWidth + expiryDateWidth + 1
)

// NewOptionSymbolComponents decodes an NSE option symbol. Every malformed
// component wraps MalformedOptionSymbolErr; the caller decides whether to
// substitute a fallback instrument, the parser never does.
func NewOptionSymbolComponents(symbol OptionSymbol) (*OptionSymbolComponents, error) {
	s := string(symbol)

	if len(s) < minOptionSymbolLen {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q is too short: %w", s, MalformedOptionSymbolErr)
	}

	kind, err := OptionKindFromCode(s[len(s)-kindCodeWidth:])
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q: %w", s, err)
	}

	strikeStr := s[len(s)-kindCodeWidth-strikeWidth : len(s)-kindCodeWidth]
	strike, err := strconv.ParseFloat(strikeStr, 64)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q has non-numeric strike %q: %w", s, strikeStr, MalformedOptionSymbolErr)
	}

	dateStr := s[len(s)-kindCodeWidth-strikeWidth-expiryDateWidth : len(s)-kindCodeWidth-strikeWidth]
	expiration, err := time.Parse("02Jan06", dateStr)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q has invalid expiry token %q: %w", s, dateStr, MalformedOptionSymbolErr)
	}

	underlying := s[:len(s)-kindCodeWidth-strikeWidth-expiryDateWidth]
	if underlying == "" {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q has no underlying: %w", s, MalformedOptionSymbolErr)
	}

	return &OptionSymbolComponents{
		Underlying:  underlying,
		Expiration:  expiration,
		OptionKind:  kind,
		StrikePrice: strike,
		Symbol:      symbol,
	}, nil
}
