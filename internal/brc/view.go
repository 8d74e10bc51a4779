package brc

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// FileAccessError is returned when the input cannot be opened or mapped.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// View is a read-only memory mapping of a whole file.
type View struct {
	data mmap.MMap
}

// OpenView maps path read-only. An empty file yields an empty view
// without mapping anything.
func OpenView(path string) (*View, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return nil, &FileAccessError{Op: "stat", Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return nil, &FileAccessError{Op: "open", Path: path, Err: fmt.Errorf("not a regular file: %s", fi.Mode())}
	}
	if fi.Size() == 0 {
		return &View{}, nil
	}
	if fi.Size() != int64(int(fi.Size())) {
		return nil, &FileAccessError{Op: "map", Path: path, Err: fmt.Errorf("file size %d does not fit in memory", fi.Size())}
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, &FileAccessError{Op: "map", Path: path, Err: err}
	}
	adviseSequential(data)
	return &View{data: data}, nil
}

// Bytes returns the mapped content. It is only valid until Close.
func (v *View) Bytes() []byte {
	return v.data
}

func (v *View) Len() int {
	return len(v.data)
}

func (v *View) At(i int) byte {
	return v.data[i]
}

// Close unmaps the view.
func (v *View) Close() error {
	if v.data == nil {
		return nil
	}
	err := v.data.Unmap()
	v.data = nil
	if err != nil {
		return fmt.Errorf("failed to unmap: %w", err)
	}
	return nil
}

// Bytes adapts an in-memory buffer to Source.
type Bytes []byte

func (b Bytes) Len() int {
	return len(b)
}

func (b Bytes) At(i int) byte {
	return b[i]
}
