package marketmodels

import (
	"fmt"
	"time"
)

// CatalogConfigYAML is the optional build configuration for the catalog CLI.
// Command-line flags override anything set here.
type CatalogConfigYAML struct {
	Venue     string   `yaml:"venue"`
	Symbols   []string `yaml:"symbols"`
	StartDate string   `yaml:"start_date"`
	EndDate   string   `yaml:"end_date"`
}

// DateRange parses the configured session-date bounds. Empty fields yield
// zero times, which the builder treats as open bounds.
func (c *CatalogConfigYAML) DateRange() (time.Time, time.Time, error) {
	var start, end time.Time

	if c.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", c.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("CatalogConfigYAML: invalid start_date %q: %v", c.StartDate, err)
		}

		start = parsed
	}

	if c.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", c.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("CatalogConfigYAML: invalid end_date %q: %v", c.EndDate, err)
		}

		end = parsed
	}

	return start, end, nil
}
