package render

import (
	"fmt"
	"io"
	"time"

	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/internal/planner"
	"github.com/username/vacation-planer/pkg/dateutil"
)

// Markers appended to day numbers in the month grid
const (
	markHoliday  = "*"
	markVacation = "+"
	markWeekend  = "."
	markWeekday  = " "
)

// Renderer writes the year calendar and the statistics panel as text
type Renderer struct {
	planner  *planner.Planner
	vacation *config.VacationConfig
}

// New creates a Renderer
func New(p *planner.Planner, vacation *config.VacationConfig) *Renderer {
	return &Renderer{
		planner:  p,
		vacation: vacation,
	}
}

// RenderYear writes the twelve month grids plus the legend
func (r *Renderer) RenderYear(w io.Writer) {
	fmt.Fprintf(w, "Vacationplan %d - %s\n", r.planner.Year(), r.vacation.Region)
	fmt.Fprintf(w, "%s\n\n", r.vacation.FullName())

	for month := time.January; month <= time.December; month++ {
		r.renderMonth(w, month)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Legend: %s holiday  %s vacation  %s weekend\n",
		markHoliday, markVacation, markWeekend)
}

func (r *Renderer) renderMonth(w io.Writer, month time.Month) {
	fmt.Fprintf(w, "%s %d\n", month, r.planner.Year())
	fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	for _, week := range dateutil.MonthGrid(r.planner.Year(), month) {
		for _, day := range week {
			info := r.planner.Day(month, day)
			if info.Display == "" {
				fmt.Fprint(w, "    ")
				continue
			}
			fmt.Fprintf(w, "%3s%s", info.Display, marker(info.Type))
		}
		fmt.Fprintln(w)
	}
}

func marker(t planner.DayType) string {
	switch t {
	case planner.DayTypeHoliday:
		return markHoliday
	case planner.DayTypeVacation:
		return markVacation
	case planner.DayTypeWeekend:
		return markWeekend
	default:
		return markWeekday
	}
}

// RenderStats writes the statistics summary panel
func (r *Renderer) RenderStats(w io.Writer, stats *planner.YearStats) {
	fmt.Fprintf(w, "\n📊 Year %d\n", stats.Year)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Total days:         %d\n", stats.TotalDays)
	fmt.Fprintf(w, "  Workdays:           %d\n", stats.Workdays)
	fmt.Fprintf(w, "  Weekends:           %d\n", stats.Weekends)
	fmt.Fprintf(w, "  Holidays:           %d\n", stats.Holidays)
	fmt.Fprintf(w, "  Vacation days:      %d (%d on workdays)\n",
		stats.VacationDays, stats.VacationWorkdays)
	fmt.Fprintf(w, "  Days off:           %d (%.1f%% of the year)\n",
		stats.DaysOff, stats.PercentOff())
	fmt.Fprintf(w, "  Days at work:       %d\n", stats.DaysAtWork)

	if len(stats.Blocks) == 0 {
		return
	}

	fmt.Fprintln(w, "\n  Vacation blocks")
	fmt.Fprintln(w, "  ─────────────────────────────────────────────────────")
	for _, block := range stats.Blocks {
		fmt.Fprintf(w, "  %-24s %s .. %s  %2d days, %2d workdays\n",
			block.Description,
			dateutil.FormatISO(block.Start),
			dateutil.FormatISO(block.End),
			block.TotalDays,
			block.Workdays)
	}
}
