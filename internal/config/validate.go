package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/username/vacation-planer/pkg/dateutil"
	"go.uber.org/zap"
)

// HolidayDoc is the raw JSON shape of a holiday document. Fields stay
// unparsed so the validator can tell a missing key from a wrong type.
type HolidayDoc struct {
	Region   json.RawMessage `json:"region"`
	Year     json.RawMessage `json:"year"`
	Holidays json.RawMessage `json:"holidays"`
}

// VacationDoc is the raw JSON shape of a vacation document
type VacationDoc struct {
	FirstName      json.RawMessage `json:"firstName"`
	LastName       json.RawMessage `json:"lastName"`
	Year           json.RawMessage `json:"year"`
	Region         json.RawMessage `json:"region"`
	VacationBlocks json.RawMessage `json:"vacationBlocks"`
}

type holidayEntryDoc struct {
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

type vacationBlockDoc struct {
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func requireString(raw json.RawMessage, field string) (string, error) {
	if !present(raw) {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidType, field)
	}
	return s, nil
}

func requireInt(raw json.RawMessage, field string) (int, error) {
	if !present(raw) {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidType, field)
	}
	return n, nil
}

// ValidateHoliday checks a raw holiday document and returns the typed
// configuration. Entries whose year differs from the declared year are kept
// with a warning.
func ValidateHoliday(doc *HolidayDoc, logger *zap.Logger) (*HolidayConfig, error) {
	region, err := requireString(doc.Region, "region")
	if err != nil {
		return nil, err
	}
	year, err := requireInt(doc.Year, "year")
	if err != nil {
		return nil, err
	}

	if !present(doc.Holidays) {
		return nil, fmt.Errorf("%w: holidays", ErrMissingField)
	}
	var entries []holidayEntryDoc
	if err := json.Unmarshal(doc.Holidays, &entries); err != nil {
		return nil, fmt.Errorf("%w: holidays must be a list", ErrInvalidType)
	}

	cfg := &HolidayConfig{
		Region:   region,
		Year:     year,
		Holidays: make([]HolidayEntry, 0, len(entries)),
	}

	for i, entry := range entries {
		if entry.Date == nil {
			return nil, fmt.Errorf("%w: holidays[%d].date", ErrMissingField, i)
		}
		if entry.Description == nil {
			return nil, fmt.Errorf("%w: holidays[%d].description", ErrMissingField, i)
		}

		date, err := dateutil.ParseISO(*entry.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: holidays[%d]: %v", ErrInvalidDateFormat, i, err)
		}

		if date.Year() != year {
			logger.Warn("Holiday date does not match configured year",
				zap.String("holiday", *entry.Description),
				zap.String("date", *entry.Date),
				zap.Int("configured_year", year))
		}

		cfg.Holidays = append(cfg.Holidays, HolidayEntry{
			Date:        date,
			Description: *entry.Description,
		})
	}

	return cfg, nil
}

// ValidateVacation checks a raw vacation document and returns the typed
// configuration. Block IDs follow the configured order.
func ValidateVacation(doc *VacationDoc, logger *zap.Logger) (*VacationConfig, error) {
	firstName, err := requireString(doc.FirstName, "firstName")
	if err != nil {
		return nil, err
	}
	lastName, err := requireString(doc.LastName, "lastName")
	if err != nil {
		return nil, err
	}
	year, err := requireInt(doc.Year, "year")
	if err != nil {
		return nil, err
	}
	region, err := requireString(doc.Region, "region")
	if err != nil {
		return nil, err
	}

	if !present(doc.VacationBlocks) {
		return nil, fmt.Errorf("%w: vacationBlocks", ErrMissingField)
	}
	var blocks []vacationBlockDoc
	if err := json.Unmarshal(doc.VacationBlocks, &blocks); err != nil {
		return nil, fmt.Errorf("%w: vacationBlocks must be a list", ErrInvalidType)
	}

	cfg := &VacationConfig{
		FirstName: firstName,
		LastName:  lastName,
		Year:      year,
		Region:    region,
		Blocks:    make([]VacationBlock, 0, len(blocks)),
	}

	for i, block := range blocks {
		if block.Description == nil {
			return nil, fmt.Errorf("%w: vacationBlocks[%d].description", ErrMissingField, i)
		}
		if block.Start == nil {
			return nil, fmt.Errorf("%w: vacationBlocks[%d].start", ErrMissingField, i)
		}
		if block.End == nil {
			return nil, fmt.Errorf("%w: vacationBlocks[%d].end", ErrMissingField, i)
		}

		start, err := dateutil.ParseISO(*block.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: vacationBlocks[%d]: %v", ErrInvalidDateFormat, i, err)
		}
		end, err := dateutil.ParseISO(*block.End)
		if err != nil {
			return nil, fmt.Errorf("%w: vacationBlocks[%d]: %v", ErrInvalidDateFormat, i, err)
		}

		if start.After(end) {
			return nil, fmt.Errorf("%w: vacationBlocks[%d] %q: %s > %s",
				ErrInvalidRange, i, *block.Description, *block.Start, *block.End)
		}

		if start.Year() != year || end.Year() != year {
			logger.Warn("Vacation block dates do not match configured year",
				zap.String("block", *block.Description),
				zap.Int("configured_year", year))
		}

		cfg.Blocks = append(cfg.Blocks, VacationBlock{
			ID:          i,
			Description: *block.Description,
			Start:       start,
			End:         end,
		})
	}

	return cfg, nil
}

// CheckCompatibility warns when the two documents disagree on region or
// year. Mismatches never fail the run.
func CheckCompatibility(holiday *HolidayConfig, vacation *VacationConfig, logger *zap.Logger) {
	if holiday.Year != vacation.Year {
		logger.Warn("Year mismatch between configs",
			zap.Int("holiday_year", holiday.Year),
			zap.Int("vacation_year", vacation.Year))
	}

	hRegion := strings.ToLower(holiday.Region)
	vRegion := strings.ToLower(vacation.Region)
	if !strings.Contains(hRegion, vRegion) && !strings.Contains(vRegion, hRegion) {
		logger.Warn("Region mismatch between configs",
			zap.String("holiday_region", holiday.Region),
			zap.String("vacation_region", vacation.Region))
	}
}
