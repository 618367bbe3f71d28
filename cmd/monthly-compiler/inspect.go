package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/output"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [report.xlsx]",
		Short: "Show the sheets and row counts of a compiled report",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	sheets, err := output.ReadWorkbook(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Sheet", "Columns", "Rows"})
	for _, s := range sheets {
		t.AppendRow(table.Row{s.Name, len(s.Header), len(s.Rows)})
	}
	t.Render()

	return nil
}
