package run

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lokesh8898/nautilus/src/eventpubsub"
	"github.com/lokesh8898/nautilus/src/transform"
)

const subscriberName = "ConvertRawDataCLI"

type Args struct {
	InputDir  string
	OutputDir string
	Workers   int
	StartDate time.Time
	EndDate   time.Time
	DryRun    bool
}

// Exec wires the progress subscriber onto the conversion topics and runs the
// converter. The converter logs failures itself; the subscriber only reports
// per-file successes.
func Exec(ctx context.Context, args Args) (*transform.ConversionSummary, error) {
	eventpubsub.Init()

	if err := eventpubsub.Subscribe(subscriberName, eventpubsub.FileConvertedEvent, func(ev eventpubsub.FileConverted) {
		log.Infof("converted %s: kept %d of %d rows", ev.Symbol, ev.RowsKept, ev.RowsRead)
	}); err != nil {
		return nil, fmt.Errorf("Exec: %w", err)
	}

	converter := &transform.Converter{
		InputDir:  args.InputDir,
		OutputDir: args.OutputDir,
		Workers:   args.Workers,
		StartDate: args.StartDate,
		EndDate:   args.EndDate,
		DryRun:    args.DryRun,
	}

	summary, err := converter.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("Exec: %w", err)
	}

	eventpubsub.WaitAsync()

	return summary, nil
}
