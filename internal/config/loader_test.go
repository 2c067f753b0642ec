package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadVacationConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "vacation-planer-max.json", `{
		"firstName": "Max",
		"lastName": "Mustermann",
		"year": 2025,
		"region": "bayern",
		"vacationBlocks": [
			{"description": "Sommerurlaub", "start": "2025-07-14", "end": "2025-07-25"}
		]
	}`)

	cfg, err := LoadVacationConfig(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadVacationConfig() error = %v", err)
	}

	if cfg.Year != 2025 {
		t.Errorf("Year = %d, want 2025", cfg.Year)
	}
	if len(cfg.Blocks) != 1 {
		t.Fatalf("Blocks = %d, want 1", len(cfg.Blocks))
	}
	if cfg.Blocks[0].Description != "Sommerurlaub" {
		t.Errorf("block description = %q", cfg.Blocks[0].Description)
	}
}

func TestLoadVacationConfigBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "vacation-planer-broken.json", `{"firstName": `)

	if _, err := LoadVacationConfig(path, zap.NewNop()); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestLoadHolidayConfigJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "holidays-bayern-2025.json", `{
		"region": "bayern",
		"year": 2025,
		"holidays": [
			{"date": "2025-01-01", "description": "Neujahr"},
			{"date": "2025-12-25", "description": "1. Weihnachtstag"}
		]
	}`)

	cfg, err := LoadHolidayConfig(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadHolidayConfig() error = %v", err)
	}

	if cfg.Region != "bayern" || cfg.Year != 2025 {
		t.Errorf("config = %q/%d, want bayern/2025", cfg.Region, cfg.Year)
	}
	if len(cfg.Holidays) != 2 {
		t.Errorf("Holidays = %d, want 2", len(cfg.Holidays))
	}
}

func TestLoadHolidayConfigICal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "holidays-bayern-2025.ics",
		"BEGIN:VCALENDAR\r\n"+
			"VERSION:2.0\r\n"+
			"BEGIN:VEVENT\r\n"+
			"DTSTART;VALUE=DATE:20251225\r\n"+
			"SUMMARY:1. Weihnachtstag\r\n"+
			"END:VEVENT\r\n"+
			"BEGIN:VEVENT\r\n"+
			"DTSTART;VALUE=DATE:20250101\r\n"+
			"SUMMARY:Neujahr\r\n"+
			"END:VEVENT\r\n"+
			"END:VCALENDAR\r\n")

	cfg, err := LoadHolidayConfig(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadHolidayConfig() error = %v", err)
	}

	if cfg.Region != "holidays-bayern-2025" {
		t.Errorf("Region = %q, want file base name", cfg.Region)
	}
	if cfg.Year != 2025 {
		t.Errorf("Year = %d, want 2025 (earliest event year)", cfg.Year)
	}
	if len(cfg.Holidays) != 2 {
		t.Fatalf("Holidays = %d, want 2", len(cfg.Holidays))
	}
	if cfg.Holidays[1].Description != "Neujahr" {
		t.Errorf("second entry = %q, want Neujahr (file order preserved)", cfg.Holidays[1].Description)
	}
}

func TestLoadHolidayConfigICalEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.ics", "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")

	if _, err := LoadHolidayConfig(path, zap.NewNop()); err == nil {
		t.Error("expected error for iCal file without events, got nil")
	}
}

func TestLoadHolidayConfigUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "holidays.yaml", "region: bayern")

	if _, err := LoadHolidayConfig(path, zap.NewNop()); err == nil {
		t.Error("expected error for unsupported extension, got nil")
	}
}
