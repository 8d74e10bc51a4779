package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/weirdgiraffe/stationagg/internal/brc"
)

func aggregate(t *testing.T, data string) *brc.Table {
	t.Helper()
	res, err := brc.RunBytes(context.Background(), []byte(data), brc.Options{Workers: 2})
	if err != nil {
		t.Fatalf("failed to aggregate: %v", err)
	}
	return res.Table
}

func render(t *testing.T, rows []Row) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	return buf.String()
}

func TestWriteSorted(t *testing.T) {
	table := aggregate(t, strings.Join([]string{
		"Tokyo;12.3",
		"Tokyo;-4.5",
		"Paris;0.0",
		"Abha;-0.1",
		"Abha;0.0",
		"Zürich;9.0",
		"Zürich;-99.9",
		"Zürich;99.9",
		"Cracow;1.2",
		"Cracow;1.3",
	}, "\n"))

	rows := Rows(table)
	Sort(rows)
	want := "{Abha=-0.1/-0.1/0.0, Cracow=1.2/1.3/1.3, Paris=0.0/0.0/0.0, Tokyo=-4.5/3.9/12.3, Zürich=-99.9/3.0/99.9}\n"
	if got := render(t, rows); got != want {
		t.Fatalf("unexpected report:\n%s", diff.LineDiff(want, got))
	}
}

func TestRowsIterationOrder(t *testing.T) {
	table := brc.NewTable(0)
	table.Observe([]byte("b"), 10)
	table.Observe([]byte("a"), 20)

	rows := Rows(table)
	if len(rows) != 2 || rows[0].Station != "b" || rows[1].Station != "a" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[1].Count != 1 || rows[1].Mean.String() != "2" {
		t.Fatalf("unexpected row %+v", rows[1])
	}
}

func TestNewRowMean(t *testing.T) {
	tests := []struct {
		entry brc.Entry
		want  string
	}{
		{brc.Entry{Min: -45, Max: 123, Sum: 78, Count: 2}, "3.9"},
		{brc.Entry{Min: 1, Max: 2, Sum: 3, Count: 2}, "0.2"},
		{brc.Entry{Min: -2, Max: -1, Sum: -3, Count: 2}, "-0.2"},
		{brc.Entry{Min: -1, Max: 0, Sum: -1, Count: 3}, "0.0"},
		{brc.Entry{Min: 10, Max: 11, Sum: 32, Count: 3}, "1.1"},
	}
	for _, tt := range tests {
		row := NewRow("x", tt.entry)
		if got := row.Mean.StringFixed(1); got != tt.want {
			t.Errorf("mean of %+v = %s, want %s", tt.entry, got, tt.want)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	if got := render(t, Rows(brc.NewTable(0))); got != "{}\n" {
		t.Fatalf("unexpected report %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	rows := []Row{NewRow("Tokyo", brc.Entry{Min: 1, Max: 1, Sum: 1, Count: 1})}
	if err := Write(failingWriter{}, rows); err == nil {
		t.Fatalf("expected an error")
	}
}
