package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

func TestDefaultAPI(t *testing.T) {
	t.Setenv(apiEnv, "")
	if got := defaultAPI(); got != "http://localhost:8000" {
		t.Errorf("defaultAPI() = %q, want the local default", got)
	}

	t.Setenv(apiEnv, "http://statements.example:8040")
	if got := defaultAPI(); got != "http://statements.example:8040" {
		t.Errorf("defaultAPI() = %q, want the env override", got)
	}
}

// setWorkbook points the statement commands at a local workbook file.
func setWorkbook(t *testing.T, path string) {
	t.Helper()
	old := workbook
	workbook = &path
	t.Cleanup(func() { workbook = old })
}

// writeWorkbook builds a small two-tab statement workbook on disk.
func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "DRE"); err != nil {
		t.Fatalf("naming the DRE sheet: %v", err)
	}
	if _, err := f.NewSheet("Margens"); err != nil {
		t.Fatalf("adding the Margens sheet: %v", err)
	}
	grid := [][]interface{}{
		{"Indicadores", "BasePercentual", "2022 TOTAL", "2023 TOTAL"},
		{"Receita Bruta", "Base", "R$ 2.000,00", "R$ 4.000,00"},
		{"Impostos", "Receita Bruta", "(500,00)", "(1.000,00)"},
	}
	for i, row := range grid {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("DRE", cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}
	path := filepath.Join(t.TempDir(), "statements.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving the workbook: %v", err)
	}
	return path
}

// The browsing commands read straight from the file when -workbook is set,
// without any service or session.
func TestTabsCommandReadsWorkbook(t *testing.T) {
	setWorkbook(t, writeWorkbook(t))

	cmd := &tabsCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	for _, want := range []string{"DRE", "Margens"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestTableCommandReadsWorkbook(t *testing.T) {
	setWorkbook(t, writeWorkbook(t))

	cmd := &tableCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("tab", "DRE")

	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = cmd.Execute(context.Background(), f)
	})

	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	for _, want := range []string{"DRE", "Receita Bruta", "Impostos", "2022", "2023"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}
