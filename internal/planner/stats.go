package planner

import (
	"time"

	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/pkg/dateutil"
)

// BlockStats holds the per-block day counts. Workdays is the block's
// utilization: days that would otherwise have been worked.
type BlockStats struct {
	ID          int
	Description string
	Start       time.Time
	End         time.Time
	TotalDays   int
	Workdays    int
}

// YearStats aggregates the whole planning year.
//
// Holidays counts configured holiday dates regardless of classification
// precedence, so a holiday falling on a weekend is still counted here.
// DaysOff and DaysAtWork partition the year: each calendar day counts toward
// exactly one of them, so DaysOff + DaysAtWork == Workdays + Weekends.
// A holiday coinciding with a weekend or a vacation day contributes once.
// Overlapping vacation blocks each contribute their full span; shared days
// are counted once per block.
type YearStats struct {
	Year             int
	TotalDays        int
	Workdays         int
	Weekends         int
	Holidays         int
	VacationDays     int
	VacationWorkdays int
	DaysOff          int
	DaysAtWork       int
	Blocks           []BlockStats
}

// PercentOff returns DaysOff as a share of the year in percent
func (s *YearStats) PercentOff() float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return float64(s.DaysOff) / float64(s.TotalDays) * 100
}

// Statistics walks every day of the planning year and reduces it to totals
func (p *Planner) Statistics() *YearStats {
	stats := &YearStats{Year: p.year}

	start, end := dateutil.YearBounds(p.year)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		stats.TotalDays++

		weekend := dateutil.IsWeekend(d)
		if weekend {
			stats.Weekends++
		} else {
			stats.Workdays++
		}

		holiday := p.IsHoliday(d)
		if holiday {
			stats.Holidays++
		}

		vacation := p.InVacation(d)
		if vacation {
			stats.VacationDays++
			if !weekend {
				stats.VacationWorkdays++
			}
		}

		if !weekend && !holiday && !vacation {
			stats.DaysAtWork++
		}
	}

	stats.DaysOff = stats.TotalDays - stats.DaysAtWork

	stats.Blocks = make([]BlockStats, 0, len(p.vacation.Blocks))
	for _, block := range p.vacation.Blocks {
		stats.Blocks = append(stats.Blocks, p.blockStats(block))
	}

	return stats
}

func (p *Planner) blockStats(block config.VacationBlock) BlockStats {
	bs := BlockStats{
		ID:          block.ID,
		Description: block.Description,
		Start:       block.Start,
		End:         block.End,
	}

	for _, d := range dateutil.DaysIn(block.Start, block.End) {
		bs.TotalDays++
		if !dateutil.IsWeekend(d) && !p.IsHoliday(d) {
			bs.Workdays++
		}
	}

	return bs
}
