package eventpubsub

import (
	"time"

	"github.com/google/uuid"
)

type ConversionStarted struct {
	RunID     uuid.UUID
	InputDir  string
	OutputDir string
	NumFiles  int
}

type FileConverted struct {
	RunID    uuid.UUID
	File     string
	Symbol   string
	RowsRead int
	RowsKept int
}

type FileFailed struct {
	RunID uuid.UUID
	File  string
	Err   error
}

type ConversionCompleted struct {
	RunID     uuid.UUID
	Succeeded int
	Failed    int
	Skipped   int
	Elapsed   time.Duration
}
