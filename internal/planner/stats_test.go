package planner

import (
	"testing"

	"github.com/username/vacation-planer/internal/config"
)

func TestStatisticsChristmasWeek(t *testing.T) {
	holidays, vacation := testConfigs()
	stats := New(2025, holidays, vacation).Statistics()

	if stats.TotalDays != 365 {
		t.Errorf("TotalDays = %d, want 365", stats.TotalDays)
	}
	// 2025 has 52 Saturdays and 52 Sundays
	if stats.Weekends != 104 {
		t.Errorf("Weekends = %d, want 104", stats.Weekends)
	}
	if stats.Workdays != 261 {
		t.Errorf("Workdays = %d, want 261", stats.Workdays)
	}
	if stats.Holidays != 1 {
		t.Errorf("Holidays = %d, want 1", stats.Holidays)
	}
	// Block Dec 22-28 spans 7 days, 5 of them Mon-Fri
	if stats.VacationDays != 7 {
		t.Errorf("VacationDays = %d, want 7", stats.VacationDays)
	}
	if stats.VacationWorkdays != 5 {
		t.Errorf("VacationWorkdays = %d, want 5", stats.VacationWorkdays)
	}
	// Dec 25 is both a holiday and a vacation day and counts once:
	// 104 weekends + 5 vacation workdays (Dec 25 among them)
	if stats.DaysOff != 109 {
		t.Errorf("DaysOff = %d, want 109", stats.DaysOff)
	}
	if stats.DaysAtWork != 256 {
		t.Errorf("DaysAtWork = %d, want 256", stats.DaysAtWork)
	}
}

func TestStatisticsBlockUtilization(t *testing.T) {
	holidays, vacation := testConfigs()
	stats := New(2025, holidays, vacation).Statistics()

	if len(stats.Blocks) != 1 {
		t.Fatalf("Blocks = %d, want 1", len(stats.Blocks))
	}

	block := stats.Blocks[0]
	if block.TotalDays != 7 {
		t.Errorf("block TotalDays = %d, want 7", block.TotalDays)
	}
	// Dec 22, 23, 24, 26: weekdays that are neither weekend nor holiday
	if block.Workdays != 4 {
		t.Errorf("block Workdays = %d, want 4", block.Workdays)
	}
}

func TestStatisticsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2024, 366},
		{2025, 365},
	}

	for _, tt := range tests {
		holidays := &config.HolidayConfig{Region: "bayern", Year: tt.year}
		vacation := &config.VacationConfig{Year: tt.year, Region: "bayern"}

		stats := New(tt.year, holidays, vacation).Statistics()
		if stats.TotalDays != tt.want {
			t.Errorf("Statistics(%d).TotalDays = %d, want %d", tt.year, stats.TotalDays, tt.want)
		}
	}
}

func TestStatisticsIdentity(t *testing.T) {
	christmasHolidays, christmasVacation := testConfigs()

	// daysOff + daysAtWork must equal workdays + weekends for any input
	configs := []struct {
		name     string
		holidays *config.HolidayConfig
		vacation *config.VacationConfig
	}{
		{
			name:     "holiday inside vacation block",
			holidays: christmasHolidays,
			vacation: christmasVacation,
		},
		{
			name:     "empty configs",
			holidays: &config.HolidayConfig{Region: "bayern", Year: 2025},
			vacation: &config.VacationConfig{Year: 2025, Region: "bayern"},
		},
		{
			name: "holiday on weekend",
			holidays: &config.HolidayConfig{Region: "bayern", Year: 2025, Holidays: []config.HolidayEntry{
				{Date: date(2025, 8, 16), Description: "Saturday holiday"},
			}},
			vacation: &config.VacationConfig{Year: 2025, Region: "bayern"},
		},
		{
			name:     "blocks crossing month boundary",
			holidays: &config.HolidayConfig{Region: "bayern", Year: 2025},
			vacation: &config.VacationConfig{Year: 2025, Region: "bayern", Blocks: []config.VacationBlock{
				{ID: 0, Description: "x", Start: date(2025, 1, 27), End: date(2025, 2, 7)},
				{ID: 1, Description: "y", Start: date(2025, 6, 30), End: date(2025, 7, 11)},
			}},
		},
	}

	for _, tt := range configs {
		t.Run(tt.name, func(t *testing.T) {
			stats := New(2025, tt.holidays, tt.vacation).Statistics()

			if stats.DaysOff+stats.DaysAtWork != stats.Workdays+stats.Weekends {
				t.Errorf("daysOff(%d) + daysAtWork(%d) != workdays(%d) + weekends(%d)",
					stats.DaysOff, stats.DaysAtWork, stats.Workdays, stats.Weekends)
			}
		})
	}
}

func TestStatisticsHolidayOnWeekendCountedOnce(t *testing.T) {
	// The classifier labels a Saturday holiday as weekend, but the holiday
	// counter tracks configured entries, not classifier output.
	holidays := &config.HolidayConfig{Region: "bayern", Year: 2025, Holidays: []config.HolidayEntry{
		{Date: date(2025, 8, 16), Description: "Saturday holiday"},
	}}
	vacation := &config.VacationConfig{Year: 2025, Region: "bayern"}

	stats := New(2025, holidays, vacation).Statistics()

	if stats.Holidays != 1 {
		t.Errorf("Holidays = %d, want 1", stats.Holidays)
	}
	if stats.Weekends != 104 {
		t.Errorf("Weekends = %d, want 104", stats.Weekends)
	}
}

func TestStatisticsOverlappingBlocksDoubleCount(t *testing.T) {
	holidays := &config.HolidayConfig{Region: "bayern", Year: 2025}
	vacation := &config.VacationConfig{Year: 2025, Region: "bayern", Blocks: []config.VacationBlock{
		// Jan 1-3 2025 are Wed-Fri; both blocks cover Jan 1
		{ID: 0, Description: "first", Start: date(2025, 1, 1), End: date(2025, 1, 3)},
		{ID: 1, Description: "second", Start: date(2025, 1, 1), End: date(2025, 1, 1)},
	}}

	stats := New(2025, holidays, vacation).Statistics()

	// Global counters see each calendar day once
	if stats.VacationDays != 3 {
		t.Errorf("VacationDays = %d, want 3", stats.VacationDays)
	}

	// Per-block stats count shared days in every block that covers them
	sum := 0
	for _, block := range stats.Blocks {
		sum += block.TotalDays
	}
	if sum != 4 {
		t.Errorf("sum of block TotalDays = %d, want 4 (Jan 1 counted twice)", sum)
	}
}

func TestStatisticsPartialYearBlock(t *testing.T) {
	// Block extends past New Year; only the in-year days count toward the
	// global totals, while the block keeps its full span.
	holidays := &config.HolidayConfig{Region: "bayern", Year: 2025}
	vacation := &config.VacationConfig{Year: 2025, Region: "bayern", Blocks: []config.VacationBlock{
		{ID: 0, Description: "Silvester", Start: date(2025, 12, 29), End: date(2026, 1, 2)},
	}}

	stats := New(2025, holidays, vacation).Statistics()

	// Dec 29-31 2025 are Mon-Wed
	if stats.VacationDays != 3 {
		t.Errorf("VacationDays = %d, want 3 (in-year days only)", stats.VacationDays)
	}
	if stats.Blocks[0].TotalDays != 5 {
		t.Errorf("block TotalDays = %d, want 5 (full span)", stats.Blocks[0].TotalDays)
	}
}

func TestPercentOff(t *testing.T) {
	stats := &YearStats{TotalDays: 365, DaysOff: 110}
	got := stats.PercentOff()
	want := float64(110) / 365 * 100
	if got != want {
		t.Errorf("PercentOff() = %f, want %f", got, want)
	}

	empty := &YearStats{}
	if empty.PercentOff() != 0 {
		t.Errorf("PercentOff() on zero stats = %f, want 0", empty.PercentOff())
	}
}
