package parsers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gtdn/registry-api/internal/models"
)

func TestClassifyType(t *testing.T) {
	parser := NewDocumentParser()

	tests := []struct {
		name string
		text string
		want models.DocumentType
	}{
		{"balance sheet", "ROZVAHA v plném rozsahu ke dni 31.12.2023", models.DocumentTypeBalanceSheet},
		{"balance sheet lowercase", "rozvaha ve zkráceném rozsahu", models.DocumentTypeBalanceSheet},
		{"profit and loss with diacritics", "VÝKAZ ZISKU A ZTRÁTY", models.DocumentTypeProfitLoss},
		{"profit and loss plain ascii", "vykaz zisku a ztraty", models.DocumentTypeProfitLoss},
		{"notes with diacritics", "PŘÍLOHA v účetní závěrce", models.DocumentTypeNotes},
		{"notes plain ascii", "priloha k ucetni zaverce", models.DocumentTypeNotes},
		{"no keyword", "Výroční zpráva společnosti", models.DocumentTypeUnknown},
		{"empty", "", models.DocumentTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.ClassifyType(tt.text); got != tt.want {
				t.Errorf("ClassifyType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyTypePriorityOrdering(t *testing.T) {
	parser := NewDocumentParser()

	// Balance-sheet keyword wins even when profit/loss appears first in text.
	text := "VÝKAZ ZISKU A ZTRÁTY je přiložen, viz ROZVAHA"
	if got := parser.ClassifyType(text); got != models.DocumentTypeBalanceSheet {
		t.Errorf("combined document classified as %q, want balance_sheet", got)
	}
}

func TestClassifyTypeIgnoresTextBeyondWindow(t *testing.T) {
	parser := NewDocumentParser()

	padding := strings.Repeat("x", classifyWindow)
	if got := parser.ClassifyType(padding + "ROZVAHA"); got != models.DocumentTypeUnknown {
		t.Errorf("keyword past position %d classified as %q, want unknown", classifyWindow, got)
	}

	// Keyword straddling the boundary must not match either.
	straddle := strings.Repeat("x", classifyWindow-3) + "ROZVAHA"
	if got := parser.ClassifyType(straddle); got != models.DocumentTypeUnknown {
		t.Errorf("straddling keyword classified as %q, want unknown", got)
	}

	inside := strings.Repeat("x", classifyWindow-len("ROZVAHA")) + "ROZVAHA"
	if got := parser.ClassifyType(inside); got != models.DocumentTypeBalanceSheet {
		t.Errorf("keyword inside window classified as %q, want balance_sheet", got)
	}
}

func TestTableFromSpansGrid(t *testing.T) {
	// Two rows, three columns, Y grows upward in PDF coordinates.
	spans := []textSpan{
		{X: 50, Y: 700, S: "AKTIVA"},
		{X: 200, Y: 701, S: "Brutto"},
		{X: 300, Y: 699, S: "Netto"},
		{X: 50, Y: 650, S: "Dlouhodobý majetek"},
		{X: 201, Y: 650, S: "1 200"},
		{X: 299, Y: 650, S: "900"},
	}

	table := tableFromSpans(spans)
	want := [][]string{
		{"AKTIVA", "Brutto", "Netto"},
		{"Dlouhodobý majetek", "1 200", "900"},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
}

func TestTableFromSpansRejectsNonTabularText(t *testing.T) {
	// A single column of prose is not a table.
	spans := []textSpan{
		{X: 50, Y: 700, S: "Odstavec jedna"},
		{X: 50, Y: 650, S: "Odstavec dva"},
		{X: 51, Y: 600, S: "Odstavec tři"},
	}
	if table := tableFromSpans(spans); table != nil {
		t.Errorf("prose produced a table: %v", table)
	}

	if table := tableFromSpans(nil); table != nil {
		t.Errorf("empty page produced a table: %v", table)
	}
}

func TestTableFromSpansSnapsWithinTolerance(t *testing.T) {
	// X jitter below the snap tolerance must land in the same column.
	spans := []textSpan{
		{X: 50, Y: 700, S: "a"},
		{X: 54, Y: 650, S: "b"},
		{X: 200, Y: 700, S: "c"},
		{X: 196, Y: 650, S: "d"},
	}

	table := tableFromSpans(spans)
	want := [][]string{{"a", "c"}, {"b", "d"}}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
}
