package main

import (
	"fmt"
	"os"

	"github.com/fenilsonani/diskscout/internal/config"
	"github.com/fenilsonani/diskscout/internal/report"
	"github.com/fenilsonani/diskscout/internal/resolve"
	"github.com/fenilsonani/diskscout/internal/scan"
	"github.com/fenilsonani/diskscout/internal/ui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath  string
	verbose     bool
	mode        string
	minSizeMB   float64
	extensions  string
	ageDays     int
	limit       int
	outputFmt   string
	outputFile  string
	interactive bool
)

func main() {
	// Local .env overrides, same precedence as exported vars
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "diskscout",
	Short: "Read-only disk-space reclamation scout",
	Long: `Diskscout scans a directory tree and reports files that are candidates
for reclamation: oversized files, temporary and cache files, files that
have not been modified in a long time, and size-based duplicate
candidates. It never deletes or moves anything.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory for reclamation candidates",
	Long: `Scans a directory under one classification policy and prints a bounded
report. The path may be an absolute or relative directory, or an alias
like "downloads"; omitting it scans the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		scanMode, err := scan.ParseMode(mode)
		if err != nil {
			return err
		}

		rawPath := ""
		if len(args) > 0 {
			rawPath = args[0]
		}

		root, err := resolve.Directory(rawPath, cfg.Aliases)
		if err != nil {
			return err
		}

		params := cfg.Params()
		if cmd.Flags().Changed("min-size") {
			params.MinSizeMB = minSizeMB
		}
		if cmd.Flags().Changed("extensions") {
			params.Extensions = scan.SplitExtensions(extensions)
		}
		if cmd.Flags().Changed("age-days") {
			params.AgeDays = ageDays
		}
		if cmd.Flags().Changed("limit") {
			params.Limit = limit
		}

		if interactive {
			return ui.Run(root, scanMode, params)
		}

		result, err := scan.Scan(cmd.Context(), root, scanMode, params)
		if err != nil {
			return err
		}

		format := report.ParseFormat(outputFmt)
		if outputFile != "" {
			if err := report.SaveToFile(result, outputFile, format); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}

		rptr := report.New(os.Stdout, format)
		if err := rptr.Report(result); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	Long:  `Shows the config file location and the effective scan defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("\nEffective defaults:\n")
		fmt.Printf("  min_size_mb: %.1f\n", cfg.MinSizeMB)
		fmt.Printf("  age_days:    %d\n", cfg.AgeDays)
		fmt.Printf("  limit:       %d\n", cfg.Limit)
		if len(cfg.Extensions) > 0 {
			fmt.Printf("  extensions:  %v\n", scan.NormalizeExtensions(cfg.Extensions))
		}
		for alias, target := range cfg.Aliases {
			fmt.Printf("  alias %s -> %s\n", alias, target)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	scanCmd.Flags().StringVar(&mode, "mode", string(scan.ModeLargeFiles),
		"scan mode (large_files, temp_files, old_files, duplicates)")
	scanCmd.Flags().Float64Var(&minSizeMB, "min-size", scan.DefaultMinSizeMB,
		"minimum file size in MB (large_files)")
	scanCmd.Flags().StringVar(&extensions, "extensions", "",
		"comma-separated extension filter, e.g. '.iso,.zip' (large_files)")
	scanCmd.Flags().IntVar(&ageDays, "age-days", scan.DefaultAgeDays,
		"age cutoff in days (old_files)")
	scanCmd.Flags().IntVar(&limit, "limit", scan.DefaultLimit,
		"maximum findings listed in the report")
	scanCmd.Flags().StringVar(&outputFmt, "output", "summary",
		"output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")
	scanCmd.Flags().BoolVar(&interactive, "interactive", false,
		"browse findings in the terminal UI")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}
