package render

import (
	"fmt"
	"strings"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

var headers = [5]string{"Provider", "Network", "Rate", "Metric", "Source"}

// Table renders records as an aligned ASCII table: left-padded cells,
// a dashed rule under the header, rates as two-decimal percentages.
func Table(records []provider.Record) string {
	rows := make([][5]string, 0, len(records)+1)
	rows = append(rows, headers)
	for _, r := range records {
		rows = append(rows, [5]string{
			r.Provider,
			r.Network,
			fmt.Sprintf("%.2f%%", r.Rate),
			strings.ToUpper(string(r.Metric)),
			r.SourceURL,
		})
	}

	if len(rows) == 1 {
		return "No staking rates available."
	}

	var widths [5]int
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	renderRow := func(row [5]string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		return strings.Join(cells, " | ")
	}

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(rows[0]), strings.Join(dashes, "-+-"))
	for _, row := range rows[1:] {
		lines = append(lines, renderRow(row))
	}
	return strings.Join(lines, "\n")
}
