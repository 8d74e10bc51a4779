package brc

// Merge combines per-worker tables into a new one. The sources are only
// read. The order of tables does not change any Entry, though it does
// decide iteration order of the result.
func Merge(tables ...*Table) *Table {
	size := 0
	for _, t := range tables {
		if t != nil {
			size = max(size, t.Len())
		}
	}

	result := NewTable(size)
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(name []byte, e Entry) bool {
			result.MergeEntry(name, e)
			return true
		})
	}
	return result
}
