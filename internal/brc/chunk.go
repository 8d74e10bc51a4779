package brc

// Source is random read access to the bytes of an input.
// View, a bytes wrapper and golang.org/x/exp/mmap.ReaderAt all satisfy it.
type Source interface {
	Len() int
	At(i int) byte
}

// ChunkRange is a half-open byte range [Start, End) of whole lines.
type ChunkRange struct {
	Start uint64
	End   uint64
}

// Len returns the size of the range in bytes.
func (r ChunkRange) Len() uint64 {
	return r.End - r.Start
}

// Plan splits src into workers contiguous ranges. Every inner boundary
// is moved forward past the next line terminator, so no line is cut in
// two. Ranges may be empty when there are fewer lines than workers.
// workers below 1 is treated as 1.
func Plan(src Source, workers int) []ChunkRange {
	if workers < 1 {
		workers = 1
	}
	size := src.Len()
	candidate := size / workers

	ranges := make([]ChunkRange, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := size
		if i != workers-1 {
			end = nextLineStart(src, max((i+1)*candidate, start), size)
		}
		ranges[i] = ChunkRange{Start: uint64(start), End: uint64(end)}
		start = end
	}
	return ranges
}

// nextLineStart returns the offset just past the first line terminator
// at or after off, or size if there is none.
func nextLineStart(src Source, off, size int) int {
	for ; off < size; off++ {
		if src.At(off) == endLine {
			return off + 1
		}
	}
	return size
}
