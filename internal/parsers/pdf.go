package parsers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/gtdn/registry-api/internal/models"
)

const (
	// maxPages bounds extraction work on large scanned filings; pages beyond
	// the cap are silently dropped, not an error
	maxPages = 100

	// snapTolerance is the coordinate slack (in points) when grouping
	// positioned text into grid rows and columns
	snapTolerance = 5.0

	// classifyWindow is how many leading characters the type classifier reads
	classifyWindow = 2000
)

// DocumentParser extracts text and tables from filed PDF documents and
// classifies the document type
type DocumentParser struct{}

// NewDocumentParser creates a new document parser
func NewDocumentParser() *DocumentParser {
	return &DocumentParser{}
}

// ExtractText extracts plain text from up to maxPages pages, pages separated
// by blank lines
func (p *DocumentParser) ExtractText(pdfBytes []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	pageCount := reader.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	var pages []string
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), nil
}

// ExtractTables detects tabular layouts on each page from positioned text.
// Each table is an ordered list of rows of cell strings; rows with no content
// at all are dropped.
func (p *DocumentParser) ExtractTables(pdfBytes []byte) ([][][]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	pageCount := reader.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	tables := make([][][]string, 0)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		spans := make([]textSpan, 0)
		for _, text := range page.Content().Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			spans = append(spans, textSpan{X: text.X, Y: text.Y, S: text.S})
		}
		if table := tableFromSpans(spans); table != nil {
			tables = append(tables, table)
		}
	}

	return tables, nil
}

// ClassifyType detects the Czech financial document type from extracted text.
// Rules are checked in priority order and only the first classifyWindow
// characters are inspected; both diacritic and plain spellings match.
func (p *DocumentParser) ClassifyType(text string) models.DocumentType {
	runes := []rune(text)
	if len(runes) > classifyWindow {
		runes = runes[:classifyWindow]
	}
	head := strings.ToUpper(string(runes))

	switch {
	case strings.Contains(head, "ROZVAHA"):
		return models.DocumentTypeBalanceSheet
	case strings.Contains(head, "VÝKAZ ZISKU"), strings.Contains(head, "VYKAZ ZISKU"):
		return models.DocumentTypeProfitLoss
	case strings.Contains(head, "PŘÍLOHA"), strings.Contains(head, "PRILOH"):
		return models.DocumentTypeNotes
	default:
		return models.DocumentTypeUnknown
	}
}

// textSpan is one positioned run of text on a page
type textSpan struct {
	X, Y float64
	S    string
}

// tableFromSpans reconstructs a grid from positioned text. Spans are clustered
// into rows by Y and into columns by X, both within snapTolerance. A page only
// yields a table when the grid has at least two rows and two columns.
func tableFromSpans(spans []textSpan) [][]string {
	if len(spans) == 0 {
		return nil
	}

	// Rows: cluster Y coordinates, top of page first (PDF Y grows upward).
	rowCenters := clusterCoords(spans, func(s textSpan) float64 { return s.Y })
	sort.Sort(sort.Reverse(sort.Float64Slice(rowCenters)))

	// Columns: cluster X start coordinates across the whole page.
	colCenters := clusterCoords(spans, func(s textSpan) float64 { return s.X })
	sort.Float64s(colCenters)

	if len(rowCenters) < 2 || len(colCenters) < 2 {
		return nil
	}

	grid := make([][][]string, len(rowCenters))
	for i := range grid {
		grid[i] = make([][]string, len(colCenters))
	}
	for _, span := range spans {
		r := nearestIndex(rowCenters, span.Y)
		c := nearestIndex(colCenters, span.X)
		grid[r][c] = append(grid[r][c], span.S)
	}

	table := make([][]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, len(row))
		empty := true
		for i, parts := range row {
			cells[i] = strings.TrimSpace(strings.Join(parts, " "))
			if cells[i] != "" {
				empty = false
			}
		}
		if !empty {
			table = append(table, cells)
		}
	}

	if len(table) < 2 {
		return nil
	}
	return table
}

// clusterCoords groups one coordinate of every span into clusters no wider
// than snapTolerance and returns the cluster centers
func clusterCoords(spans []textSpan, coord func(textSpan) float64) []float64 {
	values := make([]float64, 0, len(spans))
	for _, s := range spans {
		values = append(values, coord(s))
	}
	sort.Float64s(values)

	centers := make([]float64, 0)
	start := 0
	for i := 1; i <= len(values); i++ {
		if i == len(values) || values[i]-values[i-1] > snapTolerance {
			sum := 0.0
			for _, v := range values[start:i] {
				sum += v
			}
			centers = append(centers, sum/float64(i-start))
			start = i
		}
	}
	return centers
}

func nearestIndex(centers []float64, v float64) int {
	best := 0
	bestDist := -1.0
	for i, c := range centers {
		dist := c - v
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
