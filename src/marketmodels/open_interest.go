package marketmodels

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lokesh8898/nautilus/src/utils"
)

// OpenInterest is one open-interest observation for a contract. ChangeInOI is
// the delta against the previous observation of the same instrument.
type OpenInterest struct {
	InstrumentID InstrumentID
	OI           int64
	ChangeInOI   int64
	TsEvent      int64
	TsInit       int64
}

// The row codec is written out by hand so the column order lives in exactly
// one place and never depends on struct reflection.

func OpenInterestHeader() []string {
	return []string{"instrument_id", "oi", "coi", "ts_event", "ts_init"}
}

func (o *OpenInterest) Columns() []string {
	return []string{
		string(o.InstrumentID),
		strconv.FormatInt(o.OI, 10),
		strconv.FormatInt(o.ChangeInOI, 10),
		strconv.FormatInt(o.TsEvent, 10),
		strconv.FormatInt(o.TsInit, 10),
	}
}

func OpenInterestFromColumns(row []string) (*OpenInterest, error) {
	if len(row) != len(OpenInterestHeader()) {
		return nil, fmt.Errorf("OpenInterestFromColumns: expected %d columns, got %d: %w", len(OpenInterestHeader()), len(row), InvalidOpenInterestRowErr)
	}

	oi, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OpenInterestFromColumns: invalid oi %q: %w", row[1], InvalidOpenInterestRowErr)
	}

	coi, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OpenInterestFromColumns: invalid coi %q: %w", row[2], InvalidOpenInterestRowErr)
	}

	tsEvent, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OpenInterestFromColumns: invalid ts_event %q: %w", row[3], InvalidOpenInterestRowErr)
	}

	tsInit, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OpenInterestFromColumns: invalid ts_init %q: %w", row[4], InvalidOpenInterestRowErr)
	}

	return &OpenInterest{
		InstrumentID: InstrumentID(row[0]),
		OI:           oi,
		ChangeInOI:   coi,
		TsEvent:      tsEvent,
		TsInit:       tsInit,
	}, nil
}

func (o *OpenInterest) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("OpenInterest(instrument_id=%s, oi=%d, coi=%+d, ts_event=%s, ts_init=%s)",
		o.InstrumentID, o.OI, o.ChangeInOI, utils.UTCNanosToISOString(o.TsEvent), utils.UTCNanosToISOString(o.TsInit))
}
