// Package tabio translates between bid tab spreadsheets (CSV) and the
// engine's record shapes. Import is forgiving: prices that fail to parse
// become zero and rows without a contractor name are dropped, so a partially
// filled tab still evaluates.
package tabio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/bidlevel/bidlevel/core"
)

// columnMap locates the known columns in a bid tab header row.
type columnMap struct {
	name    int
	base    int
	special int
	alts    map[int]int // slot index -> column index
}

// ImportBidders reads CSV rows into bidder records. The first row is the
// header; columns are matched by name, never by position. Each bidder's
// price sequence is reconciled to cfg.AlternateCount. Every imported bidder
// gets a fresh id.
func ImportBidders(r io.Reader, cfg core.Config) ([]core.Bidder, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []core.Bidder{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := mapColumns(header, cfg)
	if cols.name < 0 {
		return nil, fmt.Errorf("no contractor name column found in header")
	}

	slots := cfg.AlternateCount
	if slots < 0 {
		slots = 0
	}

	var bidders []core.Bidder
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		name := strings.TrimSpace(field(row, cols.name))
		if name == "" {
			// Structurally invalid row; filtered here so the engine never
			// sees it.
			continue
		}

		prices := make([]float64, slots)
		for slot, col := range cols.alts {
			if slot < len(prices) {
				prices[slot] = parsePrice(field(row, col))
			}
		}

		b := core.Bidder{
			ID:        uuid.NewString(),
			Name:      name,
			BasePrice: parsePrice(field(row, cols.base)),
			AltPrices: prices,
		}
		if cols.special >= 0 {
			b.SpecialPrice = parsePrice(field(row, cols.special))
		}
		bidders = append(bidders, b)
	}
	if bidders == nil {
		bidders = []core.Bidder{}
	}
	return bidders, nil
}

// mapColumns matches header cells to fields. The special column is detected
// by the configured special label (or "special"), checked before the
// numbered-alternate pattern so a label like "Alt 2A" is never mistaken for
// a numbered slot.
func mapColumns(header []string, cfg core.Config) columnMap {
	cols := columnMap{name: -1, base: -1, special: -1, alts: make(map[int]int)}
	specialLabel := normalize(cfg.SpecialLabel)

	for i, h := range header {
		n := normalize(h)
		switch {
		case specialLabel != "" && n == specialLabel:
			cols.special = i
		case n == "special" || n == "special alternate":
			cols.special = i
		case n == "name" || n == "bidder" || n == "contractor":
			cols.name = i
		case n == "base" || n == "base bid" || n == "base price":
			cols.base = i
		default:
			if slot, ok := altSlot(n); ok {
				cols.alts[slot] = i
			}
		}
	}
	return cols
}

// altSlot parses headers like "alt 1" or "alternate 3" into a zero-based
// slot index.
func altSlot(n string) (int, bool) {
	var rest string
	switch {
	case strings.HasPrefix(n, "alternate "):
		rest = strings.TrimPrefix(n, "alternate ")
	case strings.HasPrefix(n, "alt "):
		rest = strings.TrimPrefix(n, "alt ")
	default:
		return 0, false
	}
	num, err := strconv.Atoi(rest)
	if err != nil || num < 1 {
		return 0, false
	}
	return num - 1, true
}

func normalize(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), " ")
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parsePrice coerces a spreadsheet cell to a price. Currency symbols,
// thousands separators, and surrounding space are tolerated; anything that
// still fails to parse, or a negative value, becomes zero.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
