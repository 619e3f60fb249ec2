package transform

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/lokesh8898/nautilus/src/marketmodels"
)

const partitionFileName = "bars.csv"

// PartitionPath is OUT/YYYY/MonthName/DD/SYMBOL/bars.csv for a session date.
func PartitionPath(outputDir string, date time.Time, symbol string) string {
	return filepath.Join(
		outputDir,
		strconv.Itoa(date.Year()),
		date.Month().String(),
		fmt.Sprintf("%02d", date.Day()),
		symbol,
		partitionFileName,
	)
}

func WritePartition(path string, bars []*marketmodels.Bar) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("WritePartition: creating %s: %w", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WritePartition: creating %s: %w", path, err)
	}

	defer file.Close()

	rows := make([]*marketmodels.NormalizedBarDTO, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, marketmodels.NewNormalizedBarDTO(bar))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("WritePartition: marshalling %s: %w", path, err)
	}

	return nil
}

func ReadPartition(path string) ([]*marketmodels.Bar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadPartition: opening %s: %w", path, err)
	}

	defer file.Close()

	var rows []*marketmodels.NormalizedBarDTO
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("ReadPartition: unmarshalling %s: %w", path, err)
	}

	bars := make([]*marketmodels.Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, row.ToModel())
	}

	return bars, nil
}

// Partition locates one symbol-session file inside the partitioned tree.
type Partition struct {
	Date   time.Time
	Symbol string
	Path   string
}

// ScanPartitions walks a partitioned tree and returns the partitions inside
// [start, end] for the requested symbols, sorted by date then symbol. A zero
// start or end leaves that bound open; an empty symbol set matches all.
func ScanPartitions(root string, start, end time.Time, symbols map[string]struct{}) ([]*Partition, error) {
	var partitions []*Partition

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || d.Name() != partitionFileName {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		parts := strings.Split(rel, string(filepath.Separator))
		if len(parts) != 5 {
			log.Warnf("ScanPartitions: skipping %s: not a YYYY/Month/DD/SYMBOL layout", path)
			return nil
		}

		year, yearErr := strconv.Atoi(parts[0])
		month, monthErr := time.Parse("January", parts[1])
		day, dayErr := strconv.Atoi(parts[2])
		if yearErr != nil || monthErr != nil || dayErr != nil {
			log.Warnf("ScanPartitions: skipping %s: unparseable date components", path)
			return nil
		}

		date := time.Date(year, month.Month(), day, 0, 0, 0, 0, time.UTC)
		if !start.IsZero() && date.Before(start) {
			return nil
		}

		if !end.IsZero() && date.After(end) {
			return nil
		}

		symbol := parts[3]
		if len(symbols) > 0 {
			if _, requested := symbols[symbol]; !requested {
				return nil
			}
		}

		partitions = append(partitions, &Partition{
			Date:   date,
			Symbol: symbol,
			Path:   path,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("ScanPartitions: walking %s: %w", root, err)
	}

	// The walk visits month directories alphabetically, not chronologically.
	sort.Slice(partitions, func(i, j int) bool {
		if !partitions[i].Date.Equal(partitions[j].Date) {
			return partitions[i].Date.Before(partitions[j].Date)
		}

		return partitions[i].Symbol < partitions[j].Symbol
	})

	return partitions, nil
}
