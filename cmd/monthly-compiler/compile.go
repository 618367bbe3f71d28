package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mediawatch/monthly-compiler-go/internal/config"
	"github.com/mediawatch/monthly-compiler-go/internal/logger"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/output"
)

var (
	outputDir  string
	suffix     string
	format     string
	extensions []string
	summary    bool
	pretty     bool
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [root-dir]",
		Short: "Compile every report under root-dir",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompile,
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the report (default: root-dir)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Report file name suffix (default: _Compiled_Report.xlsx)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: xlsx, json, yaml")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "Document extensions to scan (default: .docx)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a per-category summary table")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(logger.String("run_id", uuid.New().String()))
	log.Debug("Configuration loaded", logger.String("config", cfg.String()))

	log.Info("Scanning folder", logger.String("root", cfg.Input.Root))
	res, err := compiler.Compile(cmd.Context(), cfg.Input.Root, compiler.Options{
		Extensions: cfg.NormalizedExtensions(),
		Logger:     log,
	})
	if err != nil {
		log.Error("Compile failed", logger.Error(err))
		return err
	}

	if cfg.Output.Summary {
		renderSummary(cmd, res)
	}

	if res.Empty() {
		log.Warn("No data extracted from any document; no report written",
			logger.Int("documents", res.Documents))
		cmd.PrintErrln(compiler.ErrNoRecords)
		return nil
	}

	path, err := writeReport(cfg, res)
	if err != nil {
		log.Error("Failed to write report", logger.Error(err))
		return err
	}

	log.Info("Report written",
		logger.String("path", path),
		logger.Int("records", res.Records.Len()),
		logger.Int("skipped", len(res.Skipped)),
		logger.Duration("elapsed", res.Elapsed))
	return nil
}

// loadConfig layers flags over env and config file values.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		v.Set("input.root", args[0])
	}
	if cmd.Flags().Changed("output-dir") {
		v.Set("output.dir", outputDir)
	}
	if cmd.Flags().Changed("suffix") {
		v.Set("output.suffix", suffix)
	}
	if cmd.Flags().Changed("format") {
		v.Set("output.format", format)
	}
	if cmd.Flags().Changed("ext") {
		v.Set("input.extensions", extensions)
	}
	if cmd.Flags().Changed("summary") {
		v.Set("output.summary", summary)
	}
	if logLevel != "" {
		v.Set("logging.level", logLevel)
	}

	return config.Load(v)
}

func writeReport(cfg *config.Config, res *compiler.Result) (string, error) {
	switch cfg.Output.Format {
	case config.FormatJSON, config.FormatYAML:
		path := output.ReportPath(cfg.Input.Root, cfg.Output.Dir, output.WithExtension(cfg.Output.Suffix, "."+cfg.Output.Format))
		report := output.NewReport(filepath.Base(cfg.Input.Root), res.Records)

		var data []byte
		var err error
		if cfg.Output.Format == config.FormatJSON {
			data, err = output.ToJSON(report, pretty)
		} else {
			data, err = output.ToYAML(report)
		}
		if err != nil {
			return "", fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write output: %w", err)
		}
		return path, nil

	case config.FormatXLSX:
		path := output.ReportPath(cfg.Input.Root, cfg.Output.Dir, cfg.Output.Suffix)
		err := output.WriteWorkbook(path, res.Records, output.WorkbookOptions{MaxSheetName: cfg.Output.MaxSheetName})
		return path, err
	}

	return "", errors.New("unsupported output format: " + cfg.Output.Format)
}

func renderSummary(cmd *cobra.Command, res *compiler.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Records"})

	counts := res.Records.Counts()
	for _, c := range models.AllCategories {
		t.AppendRow(table.Row{c.String(), counts[c]})
	}
	t.AppendFooter(table.Row{"Total", res.Records.Len()})
	t.Render()

	cmd.Printf("documents: %d, tables: %d accepted / %d skipped, unreadable: %d\n",
		res.Documents, res.TablesAccepted, res.TablesRejected, len(res.Skipped))
}
