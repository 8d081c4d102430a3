package main

import (
	"strings"
	"testing"
)

func TestRenderTableIncludesHeadersAndRows(t *testing.T) {
	out := renderTable(
		[]string{"Title", "Score"},
		[][]string{{"Casablanca", "93.0"}, {"Metropolis", "88.5"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	for _, want := range []string{"Title", "Score", "Casablanca", "93.0", "Metropolis"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only one"}},
		nil,
	)
	if !strings.Contains(out, "only one") {
		t.Errorf("short row dropped:\n%s", out)
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Fatal("yesNo mapping wrong")
	}
}
