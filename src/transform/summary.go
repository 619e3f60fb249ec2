package transform

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FileError records one failed input file.
type FileError struct {
	File string
	Err  error
}

// ConversionSummary aggregates per-file results across pipeline workers. The
// Record methods are safe for concurrent use.
type ConversionSummary struct {
	RunID           uuid.UUID
	InputDir        string
	OutputDir       string
	StartedAt       time.Time
	Elapsed         time.Duration
	FilesDiscovered int
	FilesConverted  int
	FilesFailed     int
	FilesSkipped    int
	RowsRead        int
	RowsWritten     int

	mu           sync.Mutex
	rowsBySymbol map[string]int
	failures     []FileError
}

func NewConversionSummary(inputDir, outputDir string) *ConversionSummary {
	return &ConversionSummary{
		RunID:        uuid.New(),
		InputDir:     inputDir,
		OutputDir:    outputDir,
		StartedAt:    time.Now().UTC(),
		rowsBySymbol: make(map[string]int),
	}
}

func (s *ConversionSummary) RecordConverted(symbol string, rowsRead, rowsWritten int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FilesConverted++
	s.RowsRead += rowsRead
	s.RowsWritten += rowsWritten
	s.rowsBySymbol[symbol] += rowsWritten
}

func (s *ConversionSummary) RecordFailed(file string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FilesFailed++
	s.failures = append(s.failures, FileError{File: file, Err: err})
}

func (s *ConversionSummary) RecordSkipped(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FilesSkipped += count
}

func (s *ConversionSummary) Failures() []FileError {
	s.mu.Lock()
	defer s.mu.Unlock()

	failures := make([]FileError, len(s.failures))
	copy(failures, s.failures)
	return failures
}

func (s *ConversionSummary) RowsBySymbol() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make(map[string]int, len(s.rowsBySymbol))
	for symbol, count := range s.rowsBySymbol {
		rows[symbol] = count
	}

	return rows
}

func (s *ConversionSummary) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("")
	display.WriteString(fmt.Sprintf("Conversion run %s:\n", s.RunID))

	table.Append([]string{"Files discovered", p.Sprintf("%d", s.FilesDiscovered)})
	table.Append([]string{"Files converted", p.Sprintf("%d", s.FilesConverted)})
	table.Append([]string{"Files failed", p.Sprintf("%d", s.FilesFailed)})
	table.Append([]string{"Files skipped", p.Sprintf("%d", s.FilesSkipped)})
	table.Append([]string{"Rows read", p.Sprintf("%d", s.RowsRead)})
	table.Append([]string{"Rows written", p.Sprintf("%d", s.RowsWritten)})
	table.Append([]string{"Elapsed", s.Elapsed.Round(time.Millisecond).String()})

	table.Render()

	if len(s.failures) > 0 {
		display.WriteString("Failures:\n")
		for _, failure := range s.failures {
			display.WriteString(fmt.Sprintf("  %s: %v\n", failure.File, failure.Err))
		}
	}

	return display.String()
}
