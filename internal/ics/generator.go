package ics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/internal/planner"
	"github.com/username/vacation-planer/pkg/dateutil"
	"go.uber.org/zap"
)

const prodID = "-//VacationPlaner//EN"

// Generator emits one all-day out-of-office event per holiday, vacation day
// and (optionally) weekend day of the planning year.
type Generator struct {
	planner  *planner.Planner
	vacation *config.VacationConfig
	logger   *zap.Logger
}

// NewGenerator creates a new Generator
func NewGenerator(p *planner.Planner, vacation *config.VacationConfig, logger *zap.Logger) *Generator {
	return &Generator{
		planner:  p,
		vacation: vacation,
		logger:   logger,
	}
}

// Filename returns the artifact name for the planning year and owner
func (g *Generator) Filename() string {
	return fmt.Sprintf("vacation_%d_%s_%s.ics",
		g.planner.Year(), g.vacation.FirstName, g.vacation.LastName)
}

// WriteFile generates the calendar into dir and returns the file path
func (g *Generator) WriteFile(dir string, includeWeekends bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, g.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create ICS file: %w", err)
	}
	defer f.Close()

	if err := g.Write(f, includeWeekends); err != nil {
		return "", err
	}

	g.logger.Info("ICS file written", zap.String("file", path))
	return path, nil
}

// Write emits the calendar to w
func (g *Generator) Write(w io.Writer, includeWeekends bool) error {
	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintf(w, "PRODID:%s\n", prodID)
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "METHOD:PUBLISH")

	events := 0
	start, end := dateutil.YearBounds(g.planner.Year())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		info := g.planner.Classify(d)

		if info.Type == planner.DayTypeWeekday {
			continue
		}
		if info.Type == planner.DayTypeWeekend && !includeWeekends {
			continue
		}

		g.writeEvent(w, info)
		events++
	}

	fmt.Fprintln(w, "END:VCALENDAR")

	g.logger.Debug("Calendar generated",
		zap.Int("year", g.planner.Year()),
		zap.Int("events", events),
		zap.Bool("include_weekends", includeWeekends))

	return nil
}

func (g *Generator) writeEvent(w io.Writer, info planner.DayInfo) {
	name := g.vacation.FullName()

	summary := info.Description
	var class, category string
	switch info.Type {
	case planner.DayTypeHoliday:
		if summary == "" {
			summary = "Holiday"
		}
		class = "PUBLIC"
		category = "Holiday"
	case planner.DayTypeVacation:
		if summary == "" {
			summary = "Vacation"
		}
		class = "PRIVATE"
		category = "Vacation"
	case planner.DayTypeWeekend:
		summary = "Weekend"
		class = "PUBLIC"
		category = "Weekend"
	}

	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", eventUID(info, name))
	fmt.Fprintf(w, "DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z"))
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", info.Date.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", info.Date.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s - %s\n", summary, name)
	fmt.Fprintf(w, "DESCRIPTION:%s - Out of Office - %s\n", summary, name)
	fmt.Fprintln(w, "TRANSP:TRANSPARENT")
	fmt.Fprintln(w, "X-MICROSOFT-CDO-BUSYSTATUS:OOF")
	fmt.Fprintln(w, "X-MICROSOFT-CDO-ALLDAYEVENT:TRUE")
	fmt.Fprintf(w, "ORGANIZER:%s\n", name)
	fmt.Fprintln(w, "STATUS:CONFIRMED")
	fmt.Fprintf(w, "CLASS:%s\n", class)
	fmt.Fprintf(w, "CATEGORIES:%s\n", category)
	fmt.Fprintln(w, "END:VEVENT")
}

// eventUID derives a stable UID so re-imports update events in place
func eventUID(info planner.DayInfo, name string) string {
	key := fmt.Sprintf("vacation-planer/%s/%s/%s",
		dateutil.FormatISO(info.Date), info.Type, name)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
