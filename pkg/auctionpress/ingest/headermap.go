package ingest

import "strings"

// headerMap maps a sheet's first-row text values to their column position.
// Lookup is case-sensitive; when the same header appears twice the later
// column wins. That mirrors how the sheets have always been read and is
// documented as current behaviour rather than corrected.
type headerMap map[string]int

func buildHeaderMap(headerRow []string) headerMap {
	m := make(headerMap, len(headerRow))
	for col, cell := range headerRow {
		header := strings.TrimSpace(cell)
		if header == "" {
			continue
		}
		m[header] = col
	}
	return m
}

// cellValue returns the trimmed display text of the cell under the named
// header. A header missing from the map, or a row too short to reach the
// column, yields the empty string. It never fails.
func (m headerMap) cellValue(row []string, header string) string {
	col, ok := m[header]
	if !ok {
		return ""
	}
	return cellAt(row, col)
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
