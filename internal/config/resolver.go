package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Resolver locates configuration files in a directory without prompting.
// Resolution order: explicit path, exact region/year match, partial match,
// single candidate. Anything else is an error listing the candidates.
type Resolver struct {
	confDir string
	logger  *zap.Logger
}

// NewResolver creates a resolver over the given configuration directory
func NewResolver(confDir string, logger *zap.Logger) *Resolver {
	return &Resolver{
		confDir: confDir,
		logger:  logger,
	}
}

// ResolveVacation returns the path of the vacation config to use
func (r *Resolver) ResolveVacation(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("vacation config not found: %w", err)
		}
		return explicit, nil
	}

	candidates, err := filepath.Glob(filepath.Join(r.confDir, "vacation-planer*.json"))
	if err != nil {
		return "", fmt.Errorf("failed to scan config directory: %w", err)
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no vacation config files found in %s", r.confDir)
	case 1:
		r.logger.Info("Using the only available vacation config",
			zap.String("file", candidates[0]))
		return candidates[0], nil
	default:
		return "", fmt.Errorf("multiple vacation configs found in %s, pass one explicitly: %s",
			r.confDir, strings.Join(basenames(candidates), ", "))
	}
}

// ResolveHoliday returns the path of the holiday config matching region and
// year. JSON matches are preferred over iCal.
func (r *Resolver) ResolveHoliday(explicit, region string, year int) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("holiday config not found: %w", err)
		}
		return explicit, nil
	}

	candidates, err := filepath.Glob(filepath.Join(r.confDir, "holidays-*.json"))
	if err != nil {
		return "", fmt.Errorf("failed to scan config directory: %w", err)
	}
	icalFiles, err := filepath.Glob(filepath.Join(r.confDir, "*.ics"))
	if err != nil {
		return "", fmt.Errorf("failed to scan config directory: %w", err)
	}
	candidates = append(candidates, icalFiles...)

	if len(candidates) == 0 {
		return "", fmt.Errorf("no holiday config files found in %s", r.confDir)
	}

	if region != "" && year != 0 {
		base := fmt.Sprintf("holidays-%s-%d", strings.ToLower(region), year)
		for _, ext := range []string{".json", ".ics"} {
			exact := filepath.Join(r.confDir, base+ext)
			if _, err := os.Stat(exact); err == nil {
				r.logger.Info("Found exact holiday config match", zap.String("file", exact))
				return exact, nil
			}
		}

		// Partial match: file name mentions both region and year
		regionLower := strings.ToLower(region)
		yearStr := strconv.Itoa(year)
		for _, candidate := range candidates {
			name := strings.ToLower(filepath.Base(candidate))
			if strings.Contains(name, regionLower) && strings.Contains(name, yearStr) {
				r.logger.Info("Found partial holiday config match",
					zap.String("file", candidate))
				return candidate, nil
			}
		}
	}

	if len(candidates) == 1 {
		r.logger.Info("Using the only available holiday config",
			zap.String("file", candidates[0]))
		return candidates[0], nil
	}

	return "", fmt.Errorf("no holiday config matches region %q year %d in %s, candidates: %s",
		region, year, r.confDir, strings.Join(basenames(candidates), ", "))
}

func basenames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
