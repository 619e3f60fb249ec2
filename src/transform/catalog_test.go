package transform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/nsecalendar"
)

func TestCatalogBuilderRun(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	jan3 := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	write := func(date time.Time, symbol string, bars []*marketmodels.Bar) {
		require.NoError(t, WritePartition(PartitionPath(inputDir, date, symbol), bars))
	}

	write(jan2, "NIFTY25JAN2421000CE", []*marketmodels.Bar{
		{Symbol: "NIFTY25JAN2421000CE", TsEvent: 1704167100000000000, Open: 101.5, High: 103, Low: 100.25, Close: 102, Volume: 375, OI: 182350},
	})
	write(jan3, "NIFTY25JAN2421000CE", []*marketmodels.Bar{
		{Symbol: "NIFTY25JAN2421000CE", TsEvent: 1704253500000000000, Open: 102, High: 104, Low: 101, Close: 103.5, Volume: 410, OI: 183000},
	})
	write(jan2, "NIFTY-I", []*marketmodels.Bar{
		{Symbol: "NIFTY-I", TsEvent: 1704167100000000000, Open: 21740, High: 21756, Low: 21732, Close: 21750, OI: 11837100},
	})
	write(jan2, "NIFTY-INDEX", []*marketmodels.Bar{
		{Symbol: "NIFTY-INDEX", TsEvent: 1704167100000000000, Open: 21741, High: 21755, Low: 21733, Close: 21749},
	})
	write(jan2, "NIFTY24MARFUT", []*marketmodels.Bar{
		{Symbol: "NIFTY24MARFUT", TsEvent: 1704167100000000000, Open: 21900, High: 21920, Low: 21890, Close: 21910, OI: 540000},
	})
	write(jan2, "RELIANCE", []*marketmodels.Bar{
		{Symbol: "RELIANCE", TsEvent: 1704167100000000000, Open: 2590, High: 2602, Low: 2585, Close: 2598, Volume: 120500},
	})

	builder := &CatalogBuilder{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Calendar:  nsecalendar.NewHolidayCalendar(),
	}

	summary, err := builder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Instruments)
	assert.Equal(t, 1, summary.Options)
	assert.Equal(t, 2, summary.Futures)
	assert.Equal(t, 2, summary.Equities)
	assert.Equal(t, 6, summary.BarsWritten)
	assert.Equal(t, 4, summary.OIRecords, "two bars for the option, one per futures series")

	file, err := os.Open(filepath.Join(outputDir, "instruments.csv"))
	require.NoError(t, err)
	defer file.Close()

	var rows []*InstrumentRowDTO
	require.NoError(t, gocsv.UnmarshalFile(file, &rows))
	require.Len(t, rows, 5)

	byID := make(map[string]*InstrumentRowDTO, len(rows))
	for _, row := range rows {
		byID[row.InstrumentID] = row
	}

	t.Run("option row", func(t *testing.T) {
		row := byID["NIFTY25JAN2421000CE.NSE"]
		require.NotNil(t, row)

		assert.Equal(t, "option", row.Kind)
		assert.Equal(t, "NIFTY-INDEX", row.Underlying)
		assert.Equal(t, "equity", row.AssetClass)
		assert.Equal(t, "call", row.OptionKind)
		assert.Equal(t, "21000.00", row.StrikePrice)
		assert.Equal(t, "CM", row.ExpiryBucket, "seventeen trading sessions out as of the first session")
		assert.Equal(t, "INR", row.Currency)
		assert.Equal(t, 2, row.PricePrecision)
		assert.Equal(t, 0.05, row.PriceIncrement)
		assert.Equal(t, 25, row.Multiplier)
		assert.Equal(t, 25, row.LotSize)
		assert.Equal(t, int64(1706140800000000000), row.ExpirationNs)
		assert.Equal(t, int64(1703548800000000000), row.ActivationNs)
	})

	t.Run("continuous futures row", func(t *testing.T) {
		row := byID["NIFTY-I.NSE"]
		require.NotNil(t, row)

		assert.Equal(t, "continuous-futures", row.Kind)
		assert.Equal(t, "NIFTY", row.Underlying)
		assert.Equal(t, 1, row.Multiplier)
		assert.Equal(t, 25, row.LotSize)
		assert.Equal(t, int64(1577836800000000000), row.ActivationNs)
		assert.Equal(t, int64(4102358400000000000), row.ExpirationNs)
	})

	t.Run("dated futures row resolves expiry from the calendar", func(t *testing.T) {
		row := byID["NIFTY24MARFUT.NSE"]
		require.NotNil(t, row)

		assert.Equal(t, "futures", row.Kind)
		// March 2024 monthly expiry is Thursday the 28th.
		assert.Equal(t, int64(1711584000000000000), row.ExpirationNs)
		assert.Equal(t, int64(1703808000000000000), row.ActivationNs)
	})

	t.Run("index row", func(t *testing.T) {
		row := byID["NIFTY-INDEX.NSE"]
		require.NotNil(t, row)

		assert.Equal(t, "index", row.Kind)
		assert.Equal(t, "NIFTY", row.Underlying)
		assert.Equal(t, 1, row.LotSize)
	})

	t.Run("equity fallback row", func(t *testing.T) {
		row := byID["RELIANCE.NSE"]
		require.NotNil(t, row)

		assert.Equal(t, "equity", row.Kind)
		assert.Equal(t, 15, row.LotSize)
		assert.Equal(t, int64(0), row.ExpirationNs)
	})

	t.Run("per instrument bars", func(t *testing.T) {
		bars, err := ReadPartition(filepath.Join(outputDir, "bar", "NIFTY25JAN2421000CE.NSE.csv"))
		require.NoError(t, err)

		require.Len(t, bars, 2)
		assert.Equal(t, int64(1704167100000000000), bars[0].TsEvent)
		assert.Equal(t, int64(1704253500000000000), bars[1].TsEvent)
	})

	t.Run("open interest stream", func(t *testing.T) {
		records, err := ReadOpenInterestFile(filepath.Join(outputDir, "open_interest", "NIFTY25JAN2421000CE.NSE.csv"))
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, int64(182350), records[0].OI)
		assert.Equal(t, int64(182350), records[0].ChangeInOI)
		assert.Equal(t, int64(183000), records[1].OI)
		assert.Equal(t, int64(650), records[1].ChangeInOI)

		_, err = os.Stat(filepath.Join(outputDir, "open_interest", "NIFTY-INDEX.NSE.csv"))
		assert.True(t, os.IsNotExist(err), "spot series carry no open interest")
	})

	t.Run("symbol filter narrows the catalog", func(t *testing.T) {
		filteredDir := t.TempDir()

		builder := &CatalogBuilder{
			InputDir:  inputDir,
			OutputDir: filteredDir,
			Symbols:   []string{"NIFTY-I"},
			Calendar:  nsecalendar.NewHolidayCalendar(),
		}

		summary, err := builder.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Instruments)
	})

	t.Run("calendar is required", func(t *testing.T) {
		builder := &CatalogBuilder{InputDir: inputDir, OutputDir: t.TempDir()}

		_, err := builder.Run(context.Background())

		assert.Error(t, err)
	})
}
