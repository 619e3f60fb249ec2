package transform

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/nsecalendar"
)

const (
	instrumentsFileName = "instruments.csv"
	barDirName          = "bar"
	openInterestDirName = "open_interest"
)

// InstrumentRowDTO is one instruments.csv row. Option-only columns are empty
// for futures and equities; equities carry no lifetime, so their activation
// and expiration are zero.
type InstrumentRowDTO struct {
	InstrumentID   string  `csv:"instrument_id"`
	Kind           string  `csv:"kind"`
	RawSymbol      string  `csv:"raw_symbol"`
	Underlying     string  `csv:"underlying"`
	AssetClass     string  `csv:"asset_class"`
	OptionKind     string  `csv:"option_kind"`
	StrikePrice    string  `csv:"strike_price"`
	ExpiryBucket   string  `csv:"expiry_bucket"`
	Currency       string  `csv:"currency"`
	PricePrecision int     `csv:"price_precision"`
	PriceIncrement float64 `csv:"price_increment"`
	Multiplier     int     `csv:"multiplier"`
	LotSize        int     `csv:"lot_size"`
	ActivationNs   int64   `csv:"ts_activation"`
	ExpirationNs   int64   `csv:"ts_expiration"`
}

type CatalogSummary struct {
	RunID       uuid.UUID
	Instruments int
	Options     int
	Futures     int
	Equities    int
	BarsWritten int
	OIRecords   int
	Elapsed     time.Duration
}

func (s *CatalogSummary) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("")
	display.WriteString(fmt.Sprintf("Catalog run %s:\n", s.RunID))

	table.Append([]string{"Instruments", p.Sprintf("%d", s.Instruments)})
	table.Append([]string{"Options", p.Sprintf("%d", s.Options)})
	table.Append([]string{"Futures", p.Sprintf("%d", s.Futures)})
	table.Append([]string{"Equities", p.Sprintf("%d", s.Equities)})
	table.Append([]string{"Bars written", p.Sprintf("%d", s.BarsWritten)})
	table.Append([]string{"OI records", p.Sprintf("%d", s.OIRecords)})
	table.Append([]string{"Elapsed", s.Elapsed.Round(time.Millisecond).String()})

	table.Render()

	return display.String()
}

// CatalogBuilder runs the second stage: read a partitioned tree, build one
// instrument descriptor per contract symbol, and write the catalog, which is
// instruments.csv plus per-instrument bar and open-interest files.
type CatalogBuilder struct {
	InputDir  string
	OutputDir string
	Venue     string
	Symbols   []string
	StartDate time.Time
	EndDate   time.Time
	Calendar  *nsecalendar.HolidayCalendar
}

// instrumentSeries accumulates one symbol's bars across session partitions.
// firstSession anchors the expiry-bucket classification.
type instrumentSeries struct {
	classified   *ClassifiedSymbol
	firstSession time.Time
	bars         []*marketmodels.Bar
}

func (b *CatalogBuilder) Run(ctx context.Context) (*CatalogSummary, error) {
	if b.InputDir == "" || b.OutputDir == "" {
		return nil, fmt.Errorf("CatalogBuilder.Run: input and output directories are required")
	}

	if b.Calendar == nil {
		return nil, fmt.Errorf("CatalogBuilder.Run: a holiday calendar is required")
	}

	venue := b.Venue
	if venue == "" {
		venue = marketmodels.NSEVenue
	}

	var symbolSet map[string]struct{}
	if len(b.Symbols) > 0 {
		symbolSet = make(map[string]struct{}, len(b.Symbols))
		for _, symbol := range b.Symbols {
			symbolSet[symbol] = struct{}{}
		}
	}

	tracer := otel.Tracer("CatalogBuilder")
	ctx, span := tracer.Start(ctx, "CatalogBuilder.Run")
	defer span.End()

	started := time.Now().UTC()
	summary := &CatalogSummary{RunID: uuid.New()}

	partitions, err := ScanPartitions(b.InputDir, b.StartDate, b.EndDate, symbolSet)
	if err != nil {
		return nil, fmt.Errorf("CatalogBuilder.Run: %w", err)
	}

	span.SetAttributes(
		attribute.String("input.dir", b.InputDir),
		attribute.Int("partitions", len(partitions)),
	)

	log.Infof("CatalogBuilder: run %s: reading %d partitions from %s", summary.RunID, len(partitions), b.InputDir)

	series := make(map[string]*instrumentSeries)
	for _, partition := range partitions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("CatalogBuilder.Run: %w", err)
		}

		bars, readErr := ReadPartition(partition.Path)
		if readErr != nil {
			return nil, fmt.Errorf("CatalogBuilder.Run: %w", readErr)
		}

		entry, seen := series[partition.Symbol]
		if !seen {
			classified, classifyErr := ClassifySymbol(partition.Symbol)
			if classifyErr != nil {
				return nil, fmt.Errorf("CatalogBuilder.Run: %w", classifyErr)
			}

			entry = &instrumentSeries{classified: classified, firstSession: partition.Date}
			series[partition.Symbol] = entry
		}

		entry.bars = append(entry.bars, bars...)
	}

	symbols := make([]string, 0, len(series))
	for symbol := range series {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	var rows []*InstrumentRowDTO
	for _, symbol := range symbols {
		entry := series[symbol]

		row, instrumentID, rowErr := b.instrumentRow(entry, venue)
		if rowErr != nil {
			return nil, fmt.Errorf("CatalogBuilder.Run: %w", rowErr)
		}

		rows = append(rows, row)

		barPath := filepath.Join(b.OutputDir, barDirName, fmt.Sprintf("%s.csv", instrumentID))
		if err := WritePartition(barPath, entry.bars); err != nil {
			return nil, fmt.Errorf("CatalogBuilder.Run: %w", err)
		}

		summary.BarsWritten += len(entry.bars)

		switch {
		case entry.classified.Kind == SymbolKindOption:
			summary.Options++
		case entry.classified.Kind.IsFutures():
			summary.Futures++
		default:
			summary.Equities++
		}

		if entry.classified.Kind == SymbolKindOption || entry.classified.Kind.IsFutures() {
			records := DeriveOpenInterest(instrumentID, entry.bars)
			oiPath := filepath.Join(b.OutputDir, openInterestDirName, fmt.Sprintf("%s.csv", instrumentID))
			if err := writeOpenInterestFile(oiPath, records); err != nil {
				return nil, fmt.Errorf("CatalogBuilder.Run: %w", err)
			}

			summary.OIRecords += len(records)
		}
	}

	if err := writeInstrumentsFile(filepath.Join(b.OutputDir, instrumentsFileName), rows); err != nil {
		return nil, fmt.Errorf("CatalogBuilder.Run: %w", err)
	}

	summary.Instruments = len(rows)
	summary.Elapsed = time.Since(started)

	span.AddEvent("catalog complete", trace.WithAttributes(
		attribute.Int("instruments", summary.Instruments),
		attribute.Int("oi.records", summary.OIRecords),
	))

	log.Infof("CatalogBuilder: run %s: wrote %d instruments to %s in %s",
		summary.RunID, summary.Instruments, b.OutputDir, summary.Elapsed.Round(time.Millisecond))

	return summary, nil
}

func (b *CatalogBuilder) instrumentRow(entry *instrumentSeries, venue string) (*InstrumentRowDTO, marketmodels.InstrumentID, error) {
	classified := entry.classified

	switch classified.Kind {
	case SymbolKindOption:
		spec := marketmodels.NewOptionContractSpec(classified.Option, venue)

		// Expired contracts can still appear in historical partitions; they
		// simply carry no bucket.
		bucketLabel := ""
		bucket, err := b.Calendar.ClassifyExpiryBucket(classified.Option.Expiration, entry.firstSession)
		if err != nil {
			log.Warnf("CatalogBuilder: %s: no expiry bucket: %v", classified.Symbol, err)
		} else {
			bucketLabel = string(bucket)
		}

		return &InstrumentRowDTO{
			InstrumentID:   string(spec.InstrumentID),
			Kind:           string(SymbolKindOption),
			RawSymbol:      string(spec.RawSymbol),
			Underlying:     spec.Underlying,
			AssetClass:     string(spec.AssetClass),
			OptionKind:     string(spec.OptionKind),
			StrikePrice:    fmt.Sprintf("%.2f", spec.StrikePrice),
			ExpiryBucket:   bucketLabel,
			Currency:       spec.Currency,
			PricePrecision: spec.PricePrecision,
			PriceIncrement: spec.PriceIncrement,
			Multiplier:     spec.Multiplier,
			LotSize:        spec.LotSize,
			ActivationNs:   spec.ActivationNs,
			ExpirationNs:   spec.ExpirationNs,
		}, spec.InstrumentID, nil

	case SymbolKindContinuousFutures:
		spec := marketmodels.NewContinuousFuturesContractSpec(classified.Symbol, classified.Underlying, venue)
		return futuresInstrumentRow(spec, classified.Kind), spec.InstrumentID, nil

	case SymbolKindDatedFutures:
		month := classified.FuturesContractMonth
		expiry := b.Calendar.MonthlyExpiry(month.Year(), month.Month())
		spec := marketmodels.NewFuturesContractSpec(classified.Symbol, classified.Underlying, expiry, venue)
		return futuresInstrumentRow(spec, classified.Kind), spec.InstrumentID, nil

	case SymbolKindIndex:
		spec := marketmodels.NewEquitySpec(classified.Symbol, 1, venue)
		return equityInstrumentRow(spec, classified.Kind, classified.Underlying), spec.InstrumentID, nil

	case SymbolKindEquity:
		spec := marketmodels.NewEquitySpec(classified.Symbol, FallbackLotSize(classified.Symbol), venue)
		return equityInstrumentRow(spec, classified.Kind, classified.Underlying), spec.InstrumentID, nil

	default:
		return nil, "", fmt.Errorf("instrumentRow: unknown symbol kind %s", classified.Kind)
	}
}

func futuresInstrumentRow(spec *marketmodels.FuturesContractSpec, kind SymbolKind) *InstrumentRowDTO {
	return &InstrumentRowDTO{
		InstrumentID:   string(spec.InstrumentID),
		Kind:           string(kind),
		RawSymbol:      spec.RawSymbol,
		Underlying:     spec.Underlying,
		AssetClass:     string(spec.AssetClass),
		Currency:       spec.Currency,
		PricePrecision: spec.PricePrecision,
		PriceIncrement: spec.PriceIncrement,
		Multiplier:     spec.Multiplier,
		LotSize:        spec.LotSize,
		ActivationNs:   spec.ActivationNs,
		ExpirationNs:   spec.ExpirationNs,
	}
}

func equityInstrumentRow(spec *marketmodels.EquitySpec, kind SymbolKind, underlying string) *InstrumentRowDTO {
	return &InstrumentRowDTO{
		InstrumentID:   string(spec.InstrumentID),
		Kind:           string(kind),
		RawSymbol:      spec.RawSymbol,
		Underlying:     underlying,
		AssetClass:     string(marketmodels.AssetClassEquity),
		Currency:       spec.Currency,
		PricePrecision: spec.PricePrecision,
		PriceIncrement: spec.PriceIncrement,
		Multiplier:     1,
		LotSize:        spec.LotSize,
	}
}

func writeInstrumentsFile(path string, rows []*InstrumentRowDTO) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("writeInstrumentsFile: creating %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeInstrumentsFile: creating %s: %w", path, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("writeInstrumentsFile: marshalling %s: %w", path, err)
	}

	return nil
}

// writeOpenInterestFile uses the hand-written column codec rather than gocsv
// so the wire schema stays pinned to OpenInterestHeader.
func writeOpenInterestFile(path string, records []*marketmodels.OpenInterest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("writeOpenInterestFile: creating %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeOpenInterestFile: creating %s: %w", path, err)
	}

	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(marketmodels.OpenInterestHeader()); err != nil {
		return fmt.Errorf("writeOpenInterestFile: writing header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.Columns()); err != nil {
			return fmt.Errorf("writeOpenInterestFile: writing %s: %w", record.InstrumentID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writeOpenInterestFile: flushing %s: %w", path, err)
	}

	return nil
}

// ReadOpenInterestFile is the read side of the explicit codec.
func ReadOpenInterestFile(path string) ([]*marketmodels.OpenInterest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadOpenInterestFile: opening %s: %w", path, err)
	}

	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadOpenInterestFile: reading %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]*marketmodels.OpenInterest, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record, rowErr := marketmodels.OpenInterestFromColumns(row)
		if rowErr != nil {
			return nil, fmt.Errorf("ReadOpenInterestFile: %s: %w", path, rowErr)
		}

		records = append(records, record)
	}

	return records, nil
}
