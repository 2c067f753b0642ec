package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoadVacationConfig reads and validates a vacation JSON document
func LoadVacationConfig(path string, logger *zap.Logger) (*VacationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vacation config: %w", err)
	}

	var doc VacationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vacation config %s: %w", path, err)
	}

	cfg, err := ValidateVacation(&doc, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid vacation config %s: %w", path, err)
	}

	logger.Info("Vacation config loaded",
		zap.String("file", path),
		zap.String("owner", cfg.FullName()),
		zap.Int("year", cfg.Year),
		zap.Int("blocks", len(cfg.Blocks)))

	return cfg, nil
}

// LoadHolidayConfig reads and validates a holiday document. JSON and iCal
// inputs are supported; iCal files are converted to the JSON document shape
// before validation.
func LoadHolidayConfig(path string, logger *zap.Logger) (*HolidayConfig, error) {
	var cfg *HolidayConfig
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cfg, err = loadJSONHolidays(path, logger)
	case ".ics":
		cfg, err = loadICalHolidays(path, logger)
	default:
		return nil, fmt.Errorf("unsupported holiday config format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Holiday config loaded",
		zap.String("file", path),
		zap.String("region", cfg.Region),
		zap.Int("year", cfg.Year),
		zap.Int("holidays", len(cfg.Holidays)))

	return cfg, nil
}

func loadJSONHolidays(path string, logger *zap.Logger) (*HolidayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday config: %w", err)
	}

	var doc HolidayDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse holiday config %s: %w", path, err)
	}

	cfg, err := ValidateHoliday(&doc, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid holiday config %s: %w", path, err)
	}
	return cfg, nil
}

// loadICalHolidays converts the VEVENTs of an iCal file into a holiday
// config. The region is taken from the file name and the year is the
// earliest event year.
func loadICalHolidays(path string, logger *zap.Logger) (*HolidayConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday config: %w", err)
	}
	defer file.Close()

	cfg := &HolidayConfig{
		Region: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	var (
		inEvent bool
		start   time.Time
		summary string
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			start = time.Time{}
			summary = ""
		case line == "END:VEVENT":
			inEvent = false
			if start.IsZero() {
				logger.Warn("Skipping event without DTSTART", zap.String("summary", summary))
				continue
			}
			cfg.Holidays = append(cfg.Holidays, HolidayEntry{
				Date:        start,
				Description: summary,
			})
			if cfg.Year == 0 || start.Year() < cfg.Year {
				cfg.Year = start.Year()
			}
		case inEvent && strings.HasPrefix(line, "DTSTART"):
			value := line[strings.LastIndex(line, ":")+1:]
			start, err = parseICalDate(value)
			if err != nil {
				logger.Warn("Failed to parse event date",
					zap.String("value", value),
					zap.Error(err))
				start = time.Time{}
			}
		case inEvent && strings.HasPrefix(line, "SUMMARY:"):
			summary = strings.TrimPrefix(line, "SUMMARY:")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday config: %w", err)
	}

	if len(cfg.Holidays) == 0 {
		return nil, fmt.Errorf("no events found in iCal holiday config: %s", path)
	}

	return cfg, nil
}

func parseICalDate(value string) (time.Time, error) {
	for _, layout := range []string{"20060102", "20060102T150405Z", "20060102T150405"} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized iCal date: %q", value)
}
