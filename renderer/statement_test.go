package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/finview"
)

func statementTable(t *testing.T, years ...int) finview.TableModel {
	t.Helper()
	r2022 := finview.NewSheetRecord(2022)
	r2022.Set("Receita Bruta", finview.N(2000))
	r2022.Set("Impostos", finview.N(-500))

	r2023 := finview.NewSheetRecord(2023)
	r2023.Set("Receita Bruta", finview.N(4000))
	r2023.Set("Impostos", finview.N(-1000))
	r2023.SetPercent("Impostos", finview.Percent(-25))

	ds := finview.NewDataset([]finview.SheetRecord{r2022, r2023})
	return ds.Shape(years)
}

func TestStatementMarkdown(t *testing.T) {
	got := StatementMarkdown("DRE", statementTable(t, 2022, 2023))

	for _, want := range []string{
		"# DRE",
		"Indicador",
		"2022",
		"2023",
		"Receita Bruta",
		"Impostos",
		"R$4.000,00",
		"-R$1.000,00",
		"(-25.00%)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("StatementMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestStatementMarkdown_FiltersYears(t *testing.T) {
	got := StatementMarkdown("DRE", statementTable(t, 2023))

	if strings.Contains(got, "2022") {
		t.Errorf("StatementMarkdown() still shows a deselected year:\n%s", got)
	}
	if !strings.Contains(got, "2023") {
		t.Errorf("StatementMarkdown() misses the selected year:\n%s", got)
	}
}

func TestStatementMarkdown_NoYears(t *testing.T) {
	got := StatementMarkdown("DRE", statementTable(t))
	if !strings.Contains(got, "No years selected.") {
		t.Errorf("StatementMarkdown() = %q, want the no-years notice", got)
	}
}

func TestTabsMarkdown(t *testing.T) {
	got := TabsMarkdown([]string{"DRE", "Indicadores"})
	for _, want := range []string{"# Statement Tabs", "DRE", "Indicadores"} {
		if !strings.Contains(got, want) {
			t.Errorf("TabsMarkdown() misses %q in:\n%s", want, got)
		}
	}

	if got := TabsMarkdown(nil); !strings.Contains(got, "no tabs") {
		t.Errorf("TabsMarkdown(nil) = %q, want the empty notice", got)
	}
}
