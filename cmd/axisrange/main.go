// Package main provides the CLI entry point for axisrange.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/axisrange-go/pkg/axisrange"
	"github.com/ukaji3/axisrange-go/pkg/axisrange/models"
	"github.com/ukaji3/axisrange-go/pkg/axisrange/output"
	"github.com/ukaji3/axisrange-go/pkg/axisrange/parser"
)

// cliOptions holds the flags shared by every command.
type cliOptions struct {
	outputPath string
	pretty     bool
	verbose    bool
	overrides  axisOverrides
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "axisrange",
		Short: "Resolve chart axis extremes",
		Long: `axisrange computes the effective min/max and translation slope of chart axes,
including polar charts whose angular axis wraps around into a full circle.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log resolution details to stderr")
	opts.overrides.bind(pf)

	rootCmd.AddCommand(newResolveCmd(opts), newXlsxCmd(opts))
	return rootCmd
}

func newResolveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [spec.json...]",
		Short: "Resolve axes of charts described in JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var reports []*models.ChartReport
			for _, path := range args {
				specs, err := readSpecs(path)
				if err != nil {
					return err
				}
				for _, spec := range specs {
					report, err := resolveSpec(spec, opts, logger)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					report.Source = filepath.Base(path)
					reports = append(reports, report)
				}
			}
			return writeReports(cmd, opts, reports)
		},
	}
}

func newXlsxCmd(opts *cliOptions) *cobra.Command {
	var (
		sheetName string
		columns   []int
		polar     bool
	)

	cmd := &cobra.Command{
		Use:   "xlsx [input.xlsx]",
		Short: "Resolve axes of charts stored in an Excel workbook",
		Long: `Reads every chart of the workbook (radar charts become polar charts) and
resolves its axes from the referenced cells. With --columns, numeric columns of
--sheet are used as series instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := excelize.OpenFile(inputPath)
			if err != nil {
				return fmt.Errorf("open workbook: %w", err)
			}
			defer f.Close()

			bookName := filepath.Base(inputPath)
			var reports []*models.ChartReport

			if len(columns) > 0 {
				if sheetName == "" {
					sheetName = f.GetSheetName(f.GetActiveSheetIndex())
				}
				spec, err := parser.ColumnsToChartSpec(f, sheetName, columns, polar)
				if err != nil {
					return fmt.Errorf("read columns: %w", err)
				}
				report, err := resolveSpec(spec, opts, logger)
				if err != nil {
					return err
				}
				report.Source = bookName + "!" + sheetName
				return writeReports(cmd, opts, append(reports, report))
			}

			sources, err := parser.ExtractCharts(inputPath, logger)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			for _, src := range sources {
				if sheetName != "" && src.Sheet != sheetName {
					continue
				}
				spec, err := parser.ToChartSpec(f, src)
				if err != nil {
					logger.Warn("skipping chart", zap.String("chart", src.Name), zap.Error(err))
					continue
				}
				report, err := resolveSpec(spec, opts, logger)
				if err != nil {
					return fmt.Errorf("chart %q: %w", src.Name, err)
				}
				report.Source = bookName + "!" + src.Sheet
				reports = append(reports, report)
			}
			return writeReports(cmd, opts, reports)
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Only use charts (or columns) of this sheet")
	cmd.Flags().IntSliceVar(&columns, "columns", nil, "1-based numeric columns to use as series instead of charts")
	cmd.Flags().BoolVar(&polar, "polar", true, "Treat column data as a polar chart")
	return cmd
}

// readSpecs reads a JSON file holding one chart spec or a list of them.
func readSpecs(path string) ([]models.ChartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var specs []models.ChartSpec
		if err := json.Unmarshal(trimmed, &specs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return specs, nil
	}

	var spec models.ChartSpec
	if err := json.Unmarshal(trimmed, &spec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return []models.ChartSpec{spec}, nil
}

// resolveSpec builds a chart, applies command line overrides and resolves it.
func resolveSpec(spec models.ChartSpec, opts *cliOptions, logger *zap.Logger) (*models.ChartReport, error) {
	c, err := axisrange.NewChart(spec, axisrange.Options{
		Logger: logger,
		Width:  opts.overrides.width,
		Height: opts.overrides.height,
	})
	if err != nil {
		return nil, err
	}
	if err := opts.overrides.apply(c); err != nil {
		return nil, err
	}
	if err := c.Resolve(); err != nil {
		return nil, err
	}
	return c.Report()
}

func writeReports(cmd *cobra.Command, opts *cliOptions, reports []*models.ChartReport) error {
	jsonData, err := output.ReportsToJSON(reports, opts.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if opts.outputPath != "" {
		if err := output.WriteFile(opts.outputPath, jsonData); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
