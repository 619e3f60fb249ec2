package transform

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var InvalidRawFileNameErr = fmt.Errorf("raw file name does not match SYMBOL_DD_MM_YYYY.csv")

// RawFileMeta is the metadata carried by a raw file's name. One raw file holds
// one symbol's bars for one session date.
type RawFileMeta struct {
	Path   string
	Symbol string
	Date   time.Time
}

// ParseRawFileName decodes SYMBOL_DD_MM_YYYY.csv. The symbol may itself
// contain underscores; the trailing three fields are always day, month, year.
func ParseRawFileName(path string) (*RawFileMeta, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, ".csv") {
		return nil, fmt.Errorf("ParseRawFileName: %s: not a csv file: %w", base, InvalidRawFileNameErr)
	}

	parts := strings.Split(strings.TrimSuffix(base, ext), "_")
	if len(parts) < 4 {
		return nil, fmt.Errorf("ParseRawFileName: %s: expected at least 4 underscore-separated fields, got %d: %w", base, len(parts), InvalidRawFileNameErr)
	}

	symbol := strings.Join(parts[:len(parts)-3], "_")
	if symbol == "" {
		return nil, fmt.Errorf("ParseRawFileName: %s: empty symbol: %w", base, InvalidRawFileNameErr)
	}

	day, err := strconv.Atoi(parts[len(parts)-3])
	if err != nil {
		return nil, fmt.Errorf("ParseRawFileName: %s: invalid day %q: %w", base, parts[len(parts)-3], InvalidRawFileNameErr)
	}

	month, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return nil, fmt.Errorf("ParseRawFileName: %s: invalid month %q: %w", base, parts[len(parts)-2], InvalidRawFileNameErr)
	}

	year, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return nil, fmt.Errorf("ParseRawFileName: %s: invalid year %q: %w", base, parts[len(parts)-1], InvalidRawFileNameErr)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return nil, fmt.Errorf("ParseRawFileName: %s: %04d-%02d-%02d is not a calendar date: %w", base, year, month, day, InvalidRawFileNameErr)
	}

	return &RawFileMeta{
		Path:   path,
		Symbol: symbol,
		Date:   date,
	}, nil
}

// DiscoverRawFiles walks inputDir and parses every csv file name it finds.
// Files whose names do not match the raw convention are skipped with a
// warning rather than failing the walk; the caller accounts for them via the
// second return value.
func DiscoverRawFiles(inputDir string) ([]*RawFileMeta, int, error) {
	var discovered []*RawFileMeta
	skipped := 0

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != inputDir {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			return nil
		}

		meta, parseErr := ParseRawFileName(path)
		if parseErr != nil {
			log.Warnf("DiscoverRawFiles: skipping %s: %v", path, parseErr)
			skipped++
			return nil
		}

		discovered = append(discovered, meta)
		return nil
	})

	if err != nil {
		return nil, 0, fmt.Errorf("DiscoverRawFiles: walking %s: %w", inputDir, err)
	}

	return discovered, skipped, nil
}
