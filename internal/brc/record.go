package brc

import (
	"bytes"
	"errors"
)

const (
	valueSep = ';'
	endLine  = '\n'
)

// ErrMalformedRecord is returned for a line without a separator.
var ErrMalformedRecord = errors.New("separator not found")

// SplitRecord cuts a line into station name and temperature text.
// Both slices alias line. A trailing line terminator (\n or \r\n) is
// not part of the value.
func SplitRecord(line []byte) (name, value []byte, err error) {
	sep := bytes.IndexByte(line, valueSep)
	if sep == -1 {
		return nil, nil, ErrMalformedRecord
	}

	value = line[sep+1:]
	if n := len(value); n > 0 && value[n-1] == endLine {
		value = value[:n-1]
	}
	if n := len(value); n > 0 && value[n-1] == '\r' {
		value = value[:n-1]
	}
	return line[:sep], value, nil
}
