package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/vacation-planer/internal/config"
	"github.com/username/vacation-planer/internal/holidays"
	"github.com/username/vacation-planer/internal/ics"
	"github.com/username/vacation-planer/internal/planner"
	"github.com/username/vacation-planer/internal/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vacation-planer",
		Short: "Vacation and holiday planner",
		Long:  "Classify every day of a year as holiday, vacation, weekend or workday, compute time-off statistics and export the result as an iCalendar file",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger()
				}
			} else {
				initLogger()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(holidaysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func planCmd() *cobra.Command {
	var (
		vacationPath string
		holidayPath  string
		outputDir    string
		noWeekends   bool
		noICS        bool
		noRender     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Render the year calendar and export the iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			p, vacationCfg, err := buildPlanner(cfg, vacationPath, holidayPath)
			if err != nil {
				return err
			}

			if !noRender {
				r := render.New(p, vacationCfg)
				r.RenderYear(cmd.OutOrStdout())
				r.RenderStats(cmd.OutOrStdout(), p.Statistics())
			}

			if !noICS {
				dir := outputDir
				if dir == "" {
					dir = cfg.Output.Dir
				}
				includeWeekends := cfg.Output.IncludeWeekends && !noWeekends

				generator := ics.NewGenerator(p, vacationCfg, logger)
				path, err := generator.WriteFile(dir, includeWeekends)
				if err != nil {
					return fmt.Errorf("failed to generate ICS: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nCalendar written to %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&vacationPath, "vacation-config", "", "Path to vacation config file")
	cmd.Flags().StringVar(&holidayPath, "holiday-config", "", "Path to holiday config file (JSON or ICS)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&noWeekends, "no-weekends", false, "Exclude weekend events from the ICS file")
	cmd.Flags().BoolVar(&noICS, "no-ics", false, "Skip ICS generation")
	cmd.Flags().BoolVar(&noRender, "no-render", false, "Skip calendar rendering")

	return cmd
}

func statsCmd() *cobra.Command {
	var (
		vacationPath string
		holidayPath  string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print time-off statistics for the year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			p, vacationCfg, err := buildPlanner(cfg, vacationPath, holidayPath)
			if err != nil {
				return err
			}

			render.New(p, vacationCfg).RenderStats(cmd.OutOrStdout(), p.Statistics())
			return nil
		},
	}

	cmd.Flags().StringVar(&vacationPath, "vacation-config", "", "Path to vacation config file")
	cmd.Flags().StringVar(&holidayPath, "holiday-config", "", "Path to holiday config file (JSON or ICS)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var (
		region    string
		year      int
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Generate a holiday config document for a region and year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			holidayCfg, err := holidays.Generate(region, year)
			if err != nil {
				return err
			}

			dir := outputDir
			if dir == "" {
				dir = cfg.Planner.ConfDir
			}

			path, err := holidays.WriteFile(holidayCfg, dir)
			if err != nil {
				return err
			}

			logger.Info("Holiday config generated",
				zap.String("region", holidayCfg.Region),
				zap.Int("year", holidayCfg.Year),
				zap.Int("holidays", len(holidayCfg.Holidays)))
			fmt.Fprintf(cmd.OutOrStdout(), "Holiday config written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "deutschland", "Region name")
	cmd.Flags().IntVar(&year, "year", 0, "Calendar year")
	cmd.MarkFlagRequired("year")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: config directory)")

	return cmd
}

// buildPlanner resolves, loads and cross-checks both planning documents
func buildPlanner(cfg *config.Config, vacationPath, holidayPath string) (*planner.Planner, *config.VacationConfig, error) {
	resolver := config.NewResolver(cfg.Planner.ConfDir, logger)

	if vacationPath == "" {
		vacationPath = cfg.Planner.VacationConfig
	}
	resolvedVacation, err := resolver.ResolveVacation(vacationPath)
	if err != nil {
		return nil, nil, err
	}
	vacationCfg, err := config.LoadVacationConfig(resolvedVacation, logger)
	if err != nil {
		return nil, nil, err
	}

	if holidayPath == "" {
		holidayPath = cfg.Planner.HolidayConfig
	}
	resolvedHoliday, err := resolver.ResolveHoliday(holidayPath, vacationCfg.Region, vacationCfg.Year)
	if err != nil {
		return nil, nil, err
	}
	holidayCfg, err := config.LoadHolidayConfig(resolvedHoliday, logger)
	if err != nil {
		return nil, nil, err
	}

	config.CheckCompatibility(holidayCfg, vacationCfg, logger)

	return planner.New(vacationCfg.Year, holidayCfg, vacationCfg), vacationCfg, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
