package planner

import (
	"strconv"
	"time"

	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/pkg/dateutil"
)

// DayType represents the category of a calendar day
type DayType int

const (
	// DayTypeNone marks a grid padding cell outside the month
	DayTypeNone DayType = iota
	DayTypeWeekday
	DayTypeWeekend
	DayTypeHoliday
	DayTypeVacation
)

// String returns the lowercase name of the day type
func (t DayType) String() string {
	switch t {
	case DayTypeNone:
		return "none"
	case DayTypeWeekday:
		return "weekday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeVacation:
		return "vacation"
	default:
		return "unknown"
	}
}

// DayInfo is the classification of a single calendar day.
// BlockID is -1 unless the day belongs to a vacation block.
type DayInfo struct {
	Date        time.Time
	Type        DayType
	Display     string
	Description string
	BlockID     int
}

// Planner classifies the days of one year against a holiday and a vacation
// configuration. It holds no mutable state; both configs are borrowed and
// never modified, so a Planner is safe for concurrent use.
type Planner struct {
	year     int
	holidays *config.HolidayConfig
	vacation *config.VacationConfig
}

// New creates a planner for the given year
func New(year int, holidays *config.HolidayConfig, vacation *config.VacationConfig) *Planner {
	return &Planner{
		year:     year,
		holidays: holidays,
		vacation: vacation,
	}
}

// Year returns the planning year
func (p *Planner) Year() int {
	return p.year
}

// Classify returns the category of a single day.
// Precedence: holiday, then weekend, then vacation, then ordinary weekday.
// A weekend day inside a vacation block is reported as weekend.
func (p *Planner) Classify(date time.Time) DayInfo {
	info := DayInfo{
		Date:    date,
		Display: strconv.Itoa(date.Day()),
		BlockID: -1,
	}

	if desc, ok := p.holidayDescription(date); ok {
		info.Type = DayTypeHoliday
		info.Description = desc
		return info
	}

	if dateutil.IsWeekend(date) {
		info.Type = DayTypeWeekend
		return info
	}

	if block, ok := p.vacationBlock(date); ok {
		info.Type = DayTypeVacation
		info.Description = block.Description
		info.BlockID = block.ID
		return info
	}

	info.Type = DayTypeWeekday
	return info
}

// Day classifies one cell of a month grid. Day zero marks a grid padding
// cell outside the month and yields DayTypeNone with an empty display.
func (p *Planner) Day(month time.Month, day int) DayInfo {
	if day == 0 {
		return DayInfo{Type: DayTypeNone, BlockID: -1}
	}
	return p.Classify(time.Date(p.year, month, day, 0, 0, 0, 0, time.UTC))
}

// IsHoliday reports raw holiday membership, independent of classification
// precedence
func (p *Planner) IsHoliday(date time.Time) bool {
	_, ok := p.holidayDescription(date)
	return ok
}

// InVacation reports raw vacation-block membership, independent of
// classification precedence
func (p *Planner) InVacation(date time.Time) bool {
	_, ok := p.vacationBlock(date)
	return ok
}

// holidayDescription returns the description of the first configured entry
// matching the date. Duplicate dates keep the first match.
func (p *Planner) holidayDescription(date time.Time) (string, bool) {
	for _, entry := range p.holidays.Holidays {
		if dateutil.SameDay(entry.Date, date) {
			return entry.Description, true
		}
	}
	return "", false
}

// vacationBlock returns the first configured block containing the date
func (p *Planner) vacationBlock(date time.Time) (config.VacationBlock, bool) {
	for _, block := range p.vacation.Blocks {
		if dateutil.InRange(date, block.Start, block.End) {
			return block, true
		}
	}
	return config.VacationBlock{}, false
}
