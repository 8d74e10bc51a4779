package brc

import (
	"bytes"
	"context"
	"fmt"
)

// ctx is polled once per this many lines.
const cancelCheckMask = 1<<16 - 1

// Stats counts what a worker has seen.
type Stats struct {
	Lines   uint64
	Skipped uint64
}

func (s *Stats) add(other Stats) {
	s.Lines += other.Lines
	s.Skipped += other.Skipped
}

func handleLine(line []byte, table *Table) error {
	name, value, err := SplitRecord(line)
	if err != nil {
		return fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	temp, err := ParseTemp(value)
	if err != nil {
		return fmt.Errorf("failed to parse line %q: %w", line, err)
	}
	table.Observe(name, temp)
	return nil
}

// ProcessChunk aggregates the lines of data[rng.Start:rng.End] into a
// new table. Lines that can't be parsed are counted in Stats.Skipped
// and otherwise ignored. The only error is a cancelled ctx.
func ProcessChunk(ctx context.Context, data []byte, rng ChunkRange) (*Table, Stats, error) {
	var stats Stats
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	table := NewTable(defaultStations)
	buf := data[rng.Start:rng.End]

	for len(buf) > 0 {
		var line []byte
		le := bytes.IndexByte(buf, endLine)
		if le == -1 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:le], buf[le+1:]
		}

		stats.Lines++
		if stats.Lines&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}

		if err := handleLine(line, table); err != nil {
			stats.Skipped++
		}
	}
	return table, stats, nil
}
