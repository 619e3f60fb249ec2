package marketmodels

import (
	"fmt"

	"github.com/lokesh8898/nautilus/src/utils"
)

// RawBarRowDTO is one row of an NSE raw minute file. Dates arrive as
// YYYYMMDD integers and times as seconds since midnight IST.
type RawBarRowDTO struct {
	Symbol string  `csv:"symbol"`
	Date   int     `csv:"date"`
	Time   int     `csv:"time"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
	OI     int64   `csv:"oi"`
}

func (dto *RawBarRowDTO) ToModel() (*Bar, error) {
	tsEvent, err := utils.YYYYMMDDSecondsToUTCNanos(dto.Date, dto.Time)
	if err != nil {
		return nil, fmt.Errorf("RawBarRowDTO: ToModel: %w", err)
	}

	return &Bar{
		Symbol:  dto.Symbol,
		TsEvent: tsEvent,
		Open:    dto.Open,
		High:    dto.High,
		Low:     dto.Low,
		Close:   dto.Close,
		Volume:  dto.Volume,
		OI:      dto.OI,
	}, nil
}
