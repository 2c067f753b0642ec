package config

import "time"

// HolidayEntry is a single public holiday
type HolidayEntry struct {
	Date        time.Time
	Description string
}

// HolidayConfig represents a validated holiday document for one region and year
type HolidayConfig struct {
	Region   string
	Year     int
	Holidays []HolidayEntry
}

// VacationBlock is a closed date interval of personal leave.
// ID is the block's position in the configured order.
type VacationBlock struct {
	ID          int
	Description string
	Start       time.Time
	End         time.Time
}

// VacationConfig represents a validated vacation document
type VacationConfig struct {
	FirstName string
	LastName  string
	Year      int
	Region    string
	Blocks    []VacationBlock
}

// FullName returns the owner's display name
func (c *VacationConfig) FullName() string {
	return c.FirstName + " " + c.LastName
}
