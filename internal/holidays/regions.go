// Package holidays generates holiday configuration documents for German
// regions. Holiday definitions come from the rickar/cal German set; only the
// region naming and grouping live here.
package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/pkg/dateutil"
)

// regions maps region names to the state holiday sets shipped with
// rickar/cal. Bayern additionally observes Mariä Himmelfahrt in its
// catholic municipalities.
var regions = map[string][]*cal.Holiday{
	"deutschland":            de.Holidays,
	"baden-wuerttemberg":     de.HolidaysBW,
	"bayern":                 extend(de.HolidaysBY, de.MariaHimmelfahrt),
	"berlin":                 de.HolidaysBE,
	"brandenburg":            de.HolidaysBB,
	"bremen":                 de.HolidaysHB,
	"hamburg":                de.HolidaysHH,
	"hessen":                 de.HolidaysHE,
	"mecklenburg-vorpommern": de.HolidaysMV,
	"niedersachsen":          de.HolidaysNI,
	"nordrhein-westfalen":    de.HolidaysNW,
	"rheinland-pfalz":        de.HolidaysRP,
	"saarland":               de.HolidaysSL,
	"sachsen":                de.HolidaysSN,
	"sachsen-anhalt":         de.HolidaysST,
	"schleswig-holstein":     de.HolidaysSH,
	"thueringen":             de.HolidaysTH,
}

func extend(defs []*cal.Holiday, extra ...*cal.Holiday) []*cal.Holiday {
	out := make([]*cal.Holiday, 0, len(defs)+len(extra))
	out = append(out, defs...)
	return append(out, extra...)
}

// Regions lists the known region names, sorted
func Regions() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds a holiday configuration for the region and year. Holidays
// not observed in the given year are omitted.
func Generate(region string, year int) (*config.HolidayConfig, error) {
	defs, ok := regions[strings.ToLower(region)]
	if !ok {
		return nil, fmt.Errorf("unknown region %q, available: %s",
			region, strings.Join(Regions(), ", "))
	}

	cfg := &config.HolidayConfig{
		Region:   strings.ToLower(region),
		Year:     year,
		Holidays: make([]config.HolidayEntry, 0, len(defs)),
	}

	for _, def := range defs {
		actual, _ := def.Calc(year)
		if actual.IsZero() {
			continue
		}
		cfg.Holidays = append(cfg.Holidays, config.HolidayEntry{
			Date:        actual,
			Description: def.Name,
		})
	}

	sort.Slice(cfg.Holidays, func(i, j int) bool {
		return cfg.Holidays[i].Date.Before(cfg.Holidays[j].Date)
	})

	return cfg, nil
}

type holidayJSON struct {
	Region   string      `json:"region"`
	Year     int         `json:"year"`
	Holidays []entryJSON `json:"holidays"`
}

type entryJSON struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// WriteFile saves the configuration as holidays-{region}-{year}.json in dir
// and returns the file path
func WriteFile(cfg *config.HolidayConfig, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	doc := holidayJSON{
		Region:   cfg.Region,
		Year:     cfg.Year,
		Holidays: make([]entryJSON, 0, len(cfg.Holidays)),
	}
	for _, entry := range cfg.Holidays {
		doc.Holidays = append(doc.Holidays, entryJSON{
			Date:        dateutil.FormatISO(entry.Date),
			Description: entry.Description,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode holiday config: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("holidays-%s-%d.json", cfg.Region, cfg.Year))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write holiday config: %w", err)
	}

	return path, nil
}
