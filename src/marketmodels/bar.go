package marketmodels

// Bar is one minute bar with its open interest snapshot, event time in UTC
// nanoseconds since epoch.
type Bar struct {
	Symbol  string
	TsEvent int64
	Open    float64
	High    float64
	Low     float64
	Close   float64
	Volume  int64
	OI      int64
}

// Sanitize repairs invalid OHLC relationships in place: high must cover open
// and close, low must undercut them, and negative volume is clipped to zero.
// Applied to option and equity series.
func (b *Bar) Sanitize() {
	b.High = max(b.High, b.Open, b.Close)
	b.Low = min(b.Low, b.Open, b.Close)

	if b.Volume < 0 {
		b.Volume = 0
	}
}

// SanitizeAgainstClose repairs high/low against close only, the rule applied
// to futures series.
func (b *Bar) SanitizeAgainstClose() {
	b.High = max(b.High, b.Close)
	b.Low = min(b.Low, b.Close)

	if b.Volume < 0 {
		b.Volume = 0
	}
}
