package mapper

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/peter-kozarec/linreg/pkg/datasource"
	"golang.org/x/exp/mmap"
)

var errRecordSize = errors.New("size of record type is zero")

// Source gives random access to a memory mapped file of fixed size records.
// Open rejects files that do not hold a whole number of records.
type Source[T any] struct {
	path       string
	recordSize int64
	records    int64
	reader     *mmap.ReaderAt
	bufferPool *sync.Pool
}

func NewSource[T any](path string) *Source[T] {
	recordSize := int64(unsafe.Sizeof(*new(T)))
	return &Source[T]{
		path:       path,
		recordSize: recordSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, recordSize)
				return &buffer
			},
		},
	}
}

func (s *Source[T]) Open() error {
	if s.recordSize == 0 {
		return errRecordSize
	}

	reader, err := mmap.Open(s.path)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", s.path, err)
	}

	size := int64(reader.Len())
	if size%s.recordSize != 0 {
		_ = reader.Close()
		return fmt.Errorf("data source %q: file size %d is not a multiple of record size %d", s.path, size, s.recordSize)
	}

	s.reader = reader
	s.records = size / s.recordSize
	return nil
}

func (s *Source[T]) Close() {
	if s.reader != nil {
		_ = s.reader.Close()
		s.reader = nil
	}
}

// Len is the number of records found by Open.
func (s *Source[T]) Len() int64 {
	return s.records
}

func (s *Source[T]) Read(index int64, data *T) error {
	if index < 0 || index >= s.records {
		return datasource.ErrEof
	}

	buffer := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(buffer)

	n, err := s.reader.ReadAt(*buffer, index*s.recordSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read record %d: %w", index, err)
	}
	if int64(n) < s.recordSize {
		return datasource.ErrEof
	}

	*data = *(*T)(unsafe.Pointer(&(*buffer)[0])) // #nosec G103, T must not be padded
	return nil
}
