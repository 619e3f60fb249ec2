package marketmodels

// NormalizedBarDTO is the partitioned on-disk row: the raw schema with the
// local date/time pair replaced by the UTC-nanosecond event time.
type NormalizedBarDTO struct {
	Symbol  string  `csv:"symbol"`
	TsEvent int64   `csv:"ts_event"`
	Open    float64 `csv:"open"`
	High    float64 `csv:"high"`
	Low     float64 `csv:"low"`
	Close   float64 `csv:"close"`
	Volume  int64   `csv:"volume"`
	OI      int64   `csv:"oi"`
}

func NewNormalizedBarDTO(b *Bar) *NormalizedBarDTO {
	return &NormalizedBarDTO{
		Symbol:  b.Symbol,
		TsEvent: b.TsEvent,
		Open:    b.Open,
		High:    b.High,
		Low:     b.Low,
		Close:   b.Close,
		Volume:  b.Volume,
		OI:      b.OI,
	}
}

func (dto *NormalizedBarDTO) ToModel() *Bar {
	return &Bar{
		Symbol:  dto.Symbol,
		TsEvent: dto.TsEvent,
		Open:    dto.Open,
		High:    dto.High,
		Low:     dto.Low,
		Close:   dto.Close,
		Volume:  dto.Volume,
		OI:      dto.OI,
	}
}
