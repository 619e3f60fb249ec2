package marketmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarSanitize(t *testing.T) {
	t.Run("repairs high and low against open and close", func(t *testing.T) {
		bar := &Bar{
			Symbol:  "NIFTY01FEB2419500CE",
			TsEvent: 1704167100000000000,
			Open:    105.0,
			High:    102.0,
			Low:     103.0,
			Close:   101.0,
			Volume:  1250,
		}

		bar.Sanitize()

		assert.Equal(t, 105.0, bar.High)
		assert.Equal(t, 101.0, bar.Low)
		assert.Equal(t, int64(1250), bar.Volume)
	})

	t.Run("valid bar is untouched", func(t *testing.T) {
		bar := &Bar{Open: 100.0, High: 110.0, Low: 95.0, Close: 104.0, Volume: 50}

		bar.Sanitize()

		assert.Equal(t, &Bar{Open: 100.0, High: 110.0, Low: 95.0, Close: 104.0, Volume: 50}, bar)
	})

	t.Run("clips negative volume", func(t *testing.T) {
		bar := &Bar{Open: 100.0, High: 110.0, Low: 95.0, Close: 104.0, Volume: -75}

		bar.Sanitize()

		assert.Equal(t, int64(0), bar.Volume)
	})
}

func TestBarSanitizeAgainstClose(t *testing.T) {
	t.Run("repairs against close only", func(t *testing.T) {
		bar := &Bar{Open: 120.0, High: 104.0, Low: 106.0, Close: 105.0, Volume: 10}

		bar.SanitizeAgainstClose()

		// Open is not consulted for the futures rule.
		assert.Equal(t, 105.0, bar.High)
		assert.Equal(t, 105.0, bar.Low)
		assert.Equal(t, 120.0, bar.Open)
	})

	t.Run("clips negative volume", func(t *testing.T) {
		bar := &Bar{Open: 100.0, High: 110.0, Low: 95.0, Close: 104.0, Volume: -1}

		bar.SanitizeAgainstClose()

		assert.Equal(t, int64(0), bar.Volume)
	})
}
