package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the only date layout the planner accepts.
const ISODate = "2006-01-02"

// ParseISO parses a date string in strict YYYY-MM-DD format
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatISO formats a date as YYYY-MM-DD
func FormatISO(date time.Time) string {
	return date.Format(ISODate)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// SameDay returns true if two dates are on the same calendar day
func SameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// InRange returns true if date falls within [start, end], inclusive on both ends
func InRange(date, start, end time.Time) bool {
	if SameDay(date, start) || SameDay(date, end) {
		return true
	}
	return date.After(start) && date.Before(end)
}

// DaysIn returns every calendar day from start to end inclusive.
// Empty if start is after end.
func DaysIn(start, end time.Time) []time.Time {
	if start.After(end) {
		return nil
	}
	days := make([]time.Time, 0, int(end.Sub(start)/(24*time.Hour))+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// YearBounds returns January 1 and December 31 of the given year
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return
}

// DaysInYear returns 365 or 366 depending on leap years
func DaysInYear(year int) int {
	_, end := YearBounds(year)
	return end.YearDay()
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid returns the weeks of a month as rows of seven day numbers,
// Monday first. Cells outside the month are zero.
func MonthGrid(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Monday = 0 ... Sunday = 6
	col := (int(first.Weekday()) + 6) % 7
	total := DaysInMonth(year, month)

	var weeks [][7]int
	var week [7]int
	for day := 1; day <= total; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
