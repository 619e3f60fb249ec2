package transform

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/lokesh8898/nautilus/src/eventpubsub"
	"github.com/lokesh8898/nautilus/src/marketmodels"
	"github.com/lokesh8898/nautilus/src/utils"
)

const converterName = "Converter"

// sessionStartBuffer widens the start of the row filter so pre-open rows
// stamped shortly before the session survive a start-date cut.
const sessionStartBuffer = 6 * time.Hour

// Converter runs the raw-to-partitioned conversion: discover raw files, fan
// out per-file work across a bounded worker group, and aggregate results in
// a ConversionSummary. Start and end dates are optional session-date bounds;
// DryRun skips all writes.
type Converter struct {
	InputDir  string
	OutputDir string
	Workers   int
	StartDate time.Time
	EndDate   time.Time
	DryRun    bool
}

func (c *Converter) Run(ctx context.Context) (*ConversionSummary, error) {
	if c.InputDir == "" || c.OutputDir == "" {
		return nil, fmt.Errorf("Converter.Run: input and output directories are required")
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tracer := otel.Tracer(converterName)
	ctx, span := tracer.Start(ctx, "Converter.Run")
	defer span.End()

	summary := NewConversionSummary(c.InputDir, c.OutputDir)

	files, unrecognized, err := DiscoverRawFiles(c.InputDir)
	if err != nil {
		return nil, fmt.Errorf("Converter.Run: %w", err)
	}

	summary.FilesDiscovered = len(files)
	summary.RecordSkipped(unrecognized)

	files = c.filterFilesByDate(files, summary)
	startNs, endNs := c.rowBounds()

	span.SetAttributes(
		attribute.String("input.dir", c.InputDir),
		attribute.Int("files", len(files)),
	)

	log.Infof("Converter: run %s: converting %d files with %d workers", summary.RunID, len(files), workers)

	eventpubsub.Publish(converterName, eventpubsub.ConversionStartedEvent, eventpubsub.ConversionStarted{
		RunID:     summary.RunID,
		InputDir:  c.InputDir,
		OutputDir: c.OutputDir,
		NumFiles:  len(files),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, meta := range files {
		meta := meta
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rowsRead, rowsWritten, convertErr := c.convertFile(meta, startNs, endNs)
			if convertErr != nil {
				log.Errorf("Converter: %s: %v", meta.Path, convertErr)
				summary.RecordFailed(meta.Path, convertErr)

				eventpubsub.Publish(converterName, eventpubsub.FileFailedEvent, eventpubsub.FileFailed{
					RunID: summary.RunID,
					File:  meta.Path,
					Err:   convertErr,
				})

				return nil
			}

			summary.RecordConverted(meta.Symbol, rowsRead, rowsWritten)

			eventpubsub.Publish(converterName, eventpubsub.FileConvertedEvent, eventpubsub.FileConverted{
				RunID:    summary.RunID,
				File:     meta.Path,
				Symbol:   meta.Symbol,
				RowsRead: rowsRead,
				RowsKept: rowsWritten,
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, fmt.Errorf("Converter.Run: %w", err)
	}

	summary.Elapsed = time.Since(summary.StartedAt)

	eventpubsub.Publish(converterName, eventpubsub.ConversionCompletedEvent, eventpubsub.ConversionCompleted{
		RunID:     summary.RunID,
		Succeeded: summary.FilesConverted,
		Failed:    summary.FilesFailed,
		Skipped:   summary.FilesSkipped,
		Elapsed:   summary.Elapsed,
	})

	span.AddEvent("conversion complete", trace.WithAttributes(
		attribute.Int("files.converted", summary.FilesConverted),
		attribute.Int("files.failed", summary.FilesFailed),
	))

	log.Infof("Converter: run %s: converted %d files (%d failed, %d skipped) in %s",
		summary.RunID, summary.FilesConverted, summary.FilesFailed, summary.FilesSkipped, summary.Elapsed.Round(time.Millisecond))

	return summary, nil
}

// convertFile reads one raw file, normalizes its rows, and writes the
// partition for the file's session date. Returns rows read and rows written.
func (c *Converter) convertFile(meta *RawFileMeta, startNs, endNs int64) (int, int, error) {
	file, err := os.Open(meta.Path)
	if err != nil {
		return 0, 0, fmt.Errorf("convertFile: opening %s: %w", meta.Path, err)
	}

	defer file.Close()

	var rows []*marketmodels.RawBarRowDTO
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return 0, 0, fmt.Errorf("convertFile: unmarshalling %s: %w", meta.Path, err)
	}

	classified, err := ClassifySymbol(meta.Symbol)
	if err != nil {
		return len(rows), 0, fmt.Errorf("convertFile: %w", err)
	}

	bars, err := NormalizeRows(rows, classified.Kind)
	if err != nil {
		return len(rows), 0, fmt.Errorf("convertFile: %s: %w", meta.Path, err)
	}

	bars = FilterBars(bars, startNs, endNs)

	if c.DryRun {
		log.Infof("Converter: dry run: would write %d bars to %s", len(bars), PartitionPath(c.OutputDir, meta.Date, meta.Symbol))
		return len(rows), len(bars), nil
	}

	if len(bars) == 0 {
		log.Debugf("Converter: %s: no rows in range", meta.Path)
		return len(rows), 0, nil
	}

	if err := WritePartition(PartitionPath(c.OutputDir, meta.Date, meta.Symbol), bars); err != nil {
		return len(rows), 0, fmt.Errorf("convertFile: %w", err)
	}

	return len(rows), len(bars), nil
}

func (c *Converter) filterFilesByDate(files []*RawFileMeta, summary *ConversionSummary) []*RawFileMeta {
	if c.StartDate.IsZero() && c.EndDate.IsZero() {
		return files
	}

	var inRange []*RawFileMeta
	for _, meta := range files {
		if !c.StartDate.IsZero() && meta.Date.Before(c.StartDate) {
			summary.RecordSkipped(1)
			continue
		}

		if !c.EndDate.IsZero() && meta.Date.After(c.EndDate) {
			summary.RecordSkipped(1)
			continue
		}

		inRange = append(inRange, meta)
	}

	return inRange
}

// rowBounds converts the session-date bounds to event-time bounds: the start
// opens six hours before midnight IST of the start date, the end closes at
// midnight IST after the end date.
func (c *Converter) rowBounds() (int64, int64) {
	startNs := int64(math.MinInt64)
	if !c.StartDate.IsZero() {
		startNs = time.Date(c.StartDate.Year(), c.StartDate.Month(), c.StartDate.Day(), 0, 0, 0, 0, utils.IST).
			Add(-sessionStartBuffer).UnixNano()
	}

	endNs := int64(math.MaxInt64)
	if !c.EndDate.IsZero() {
		endNs = time.Date(c.EndDate.Year(), c.EndDate.Month(), c.EndDate.Day(), 0, 0, 0, 0, utils.IST).
			AddDate(0, 0, 1).UnixNano()
	}

	return startNs, endNs
}
