package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
)

// IST is the fixed India Standard Time offset, UTC+5:30. NSE feed timestamps
// carry no daylight-saving or historical offset changes, so a fixed zone is
// all the conversion needs; this is not a general timezone converter.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var InvalidDateIntErr = fmt.Errorf("date integer is not a valid YYYYMMDD calendar date")
var InvalidSecondsErr = fmt.Errorf("seconds since midnight must be in [0, 86399]")
var TimestampSanityErr = fmt.Errorf("timestamp failed sanity validation")

// Sanity bounds for converted event times: 2018-01-01 through 2026-01-01 UTC.
const (
	MinValidTimestampNs int64 = 1514764800000000000
	MaxValidTimestampNs int64 = 1767225600000000000
)

const maxSecondsSinceMidnight = 86399

// YYYYMMDDSecondsToUTCNanos converts the raw-feed encoding, a YYYYMMDD date
// integer plus seconds since midnight IST, into UTC nanoseconds since epoch.
//
//	YYYYMMDDSecondsToUTCNanos(20240102, 33300) // 09:15 IST market open
//	// 1704167100000000000 = 2024-01-02T03:45:00Z
func YYYYMMDDSecondsToUTCNanos(dateInt, secondsInt int) (int64, error) {
	if secondsInt < 0 || secondsInt > maxSecondsSinceMidnight {
		return 0, fmt.Errorf("YYYYMMDDSecondsToUTCNanos: seconds %d: %w", secondsInt, InvalidSecondsErr)
	}

	year := dateInt / 10000
	month := (dateInt % 10000) / 100
	day := dateInt % 100

	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > daysInMonth(year, time.Month(month)) {
		return 0, fmt.Errorf("YYYYMMDDSecondsToUTCNanos: date %d: %w", dateInt, InvalidDateIntErr)
	}

	hours := secondsInt / 3600
	minutes := (secondsInt % 3600) / 60
	seconds := secondsInt % 60

	wall := time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, IST)
	return wall.UnixNano(), nil
}

// ValidateTimestampConversion recomputes the conversion for a source pair and
// checks the claimed result against it, against the 2018-2026 bounds, and for
// 19-digit nanosecond magnitude. Diagnostic path only, never the hot path.
func ValidateTimestampConversion(dateInt, secondsInt int, claimedNanos int64) error {
	expected, err := YYYYMMDDSecondsToUTCNanos(dateInt, secondsInt)
	if err != nil {
		return fmt.Errorf("ValidateTimestampConversion: %w", err)
	}

	if claimedNanos != expected {
		return fmt.Errorf("ValidateTimestampConversion: source %d + %ds: expected %d, got %d (difference %d ns): %w",
			dateInt, secondsInt, expected, claimedNanos, claimedNanos-expected, TimestampSanityErr)
	}

	if claimedNanos < MinValidTimestampNs || claimedNanos > MaxValidTimestampNs {
		return fmt.Errorf("ValidateTimestampConversion: %d (%s) outside expected range 2018-2026: %w",
			claimedNanos, UTCNanosToISOString(claimedNanos), TimestampSanityErr)
	}

	if digits := len(strconv.FormatInt(claimedNanos, 10)); digits != 19 {
		return fmt.Errorf("ValidateTimestampConversion: %d has %d digits, expected 19 for nanosecond precision: %w",
			claimedNanos, digits, TimestampSanityErr)
	}

	return nil
}

// SecondsToTimeString renders seconds since midnight as HH:MM:SS, for logs.
func SecondsToTimeString(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// UTCNanosToISOString renders UTC nanoseconds as a nanosecond-precision
// ISO-8601 string, for logs.
func UTCNanosToISOString(ns int64) string {
	return time.Unix(0, ns).UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

// TimestampFieldAnalysis summarizes a raw timestamp column so its encoding
// can be identified before conversion.
type TimestampFieldAnalysis struct {
	Min          int64
	Max          int64
	Mean         float64
	StdDev       float64
	SampleValues []int64
	NumDigits    int
	LikelyFormat string
}

// AnalyzeTimestampField infers the likely encoding of a timestamp column
// from its digit count and summarizes its distribution.
func AnalyzeTimestampField(values []int64) (*TimestampFieldAnalysis, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("AnalyzeTimestampField: no values to analyze")
	}

	data := make(stats.Float64Data, len(values))
	minValue, maxValue := values[0], values[0]
	for i, v := range values {
		data[i] = float64(v)
		minValue = min(minValue, v)
		maxValue = max(maxValue, v)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeTimestampField: mean: %w", err)
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeTimestampField: standard deviation: %w", err)
	}

	sampleSize := min(len(values), 5)
	numDigits := len(strconv.FormatInt(values[0], 10))

	return &TimestampFieldAnalysis{
		Min:          minValue,
		Max:          maxValue,
		Mean:         mean,
		StdDev:       stdDev,
		SampleValues: values[:sampleSize],
		NumDigits:    numDigits,
		LikelyFormat: likelyTimestampFormat(numDigits),
	}, nil
}

func likelyTimestampFormat(numDigits int) string {
	switch numDigits {
	case 8:
		return "YYYYMMDD"
	case 5:
		return "seconds_since_midnight"
	case 10:
		return "unix_seconds"
	case 13:
		return "unix_milliseconds"
	case 19:
		return "unix_nanoseconds"
	default:
		return "unknown"
	}
}

func daysInMonth(year int, month time.Month) int {
	// day zero of the following month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
