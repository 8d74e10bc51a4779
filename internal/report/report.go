// Package report turns an aggregate table into printable rows.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/weirdgiraffe/stationagg/internal/brc"
)

// Row is one station with its temperatures in degrees.
type Row struct {
	Station string
	Min     decimal.Decimal
	Mean    decimal.Decimal
	Max     decimal.Decimal
	Count   uint64
}

func tenths(v int64) decimal.Decimal {
	return decimal.New(v, -1)
}

// NewRow converts an entry kept in tenths. Mean is Sum/Count rounded
// half away from zero to one decimal.
func NewRow(name string, e brc.Entry) Row {
	mean := tenths(e.Sum).Div(decimal.NewFromInt(int64(e.Count))).Round(1)
	return Row{
		Station: name,
		Min:     tenths(int64(e.Min)),
		Mean:    mean,
		Max:     tenths(int64(e.Max)),
		Count:   e.Count,
	}
}

// Rows returns one row per station in the table's iteration order.
func Rows(t *brc.Table) []Row {
	rows := make([]Row, 0, t.Len())
	t.Each(func(name []byte, e brc.Entry) bool {
		rows = append(rows, NewRow(string(name), e))
		return true
	})
	return rows
}

// Sort orders rows by station name, bytewise.
func Sort(rows []Row) {
	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Station, b.Station)
	})
}

// Write prints rows as {name=min/mean/max, ...} followed by a newline.
func Write(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for i, r := range rows {
		if i != 0 {
			bw.WriteString(", ")
		}
		fmt.Fprintf(bw, "%s=%s/%s/%s",
			r.Station,
			r.Min.StringFixed(1),
			r.Mean.StringFixed(1),
			r.Max.StringFixed(1))
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
