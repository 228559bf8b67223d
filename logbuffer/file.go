package logbuffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileBuffer appends one $type-tagged JSON line per record to a
// logbuffer_<uuid>.tmp file. Find re-opens and re-scans the file, decoding
// each line independently so a torn last line doesn't abort the scan.
// Remove is a no-op, per the Log Buffer contract. Dispose closes and
// deletes the file; it is idempotent.
type FileBuffer struct {
	mu       sync.Mutex
	path     string
	file     *os.File
	count    int
	disposed bool
}

func NewFile(tmpDir string) (*FileBuffer, error) {
	name := fmt.Sprintf("logbuffer_%s.tmp", uuid.NewString())
	path := filepath.Join(tmpDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o600)
	if err != nil {
		return nil, ErrBufferIO{Op: "create", Err: err}
	}
	return &FileBuffer{path: path, file: f}, nil
}

func (b *FileBuffer) Add(rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return ErrBufferIO{Op: "add", Err: errors.New("buffer disposed")}
	}
	line, err := marshalWithType(rec)
	if err != nil {
		return ErrBufferIO{Op: "marshal", Err: err}
	}
	line = append(line, '\n')
	if _, err := b.file.Write(line); err != nil {
		return ErrBufferIO{Op: "write", Err: err}
	}
	b.count++
	return nil
}

func (b *FileBuffer) Find(predicate func(Record) bool) ([]Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return nil, ErrBufferIO{Op: "find", Err: errors.New("buffer disposed")}
	}
	if err := b.file.Sync(); err != nil {
		return nil, ErrBufferIO{Op: "sync", Err: err}
	}
	rf, err := os.Open(b.path)
	if err != nil {
		return nil, ErrBufferIO{Op: "open", Err: err}
	}
	defer rf.Close()

	var out []Record
	scanner := bufio.NewScanner(rf)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec, err := decodeEnvelope(line)
		if err != nil {
			_lg.WithError(err).Warn("logbuffer: skipping unreadable line")
			continue
		}
		if predicate == nil || predicate(rec) {
			out = append(out, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return out, ErrBufferIO{Op: "scan", Err: err}
	}
	return out, nil
}

// Remove is a no-op; the file-backed buffer never compacts its backing file.
func (b *FileBuffer) Remove(rec Record) error { return nil }

func (b *FileBuffer) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

func (b *FileBuffer) Dispose() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return nil
	}
	b.disposed = true
	closeErr := b.file.Close()
	removeErr := os.Remove(b.path)
	if closeErr != nil {
		return ErrBufferIO{Op: "close", Err: closeErr}
	}
	if removeErr != nil && !os.IsNotExist(removeErr) {
		return ErrBufferIO{Op: "remove", Err: removeErr}
	}
	return nil
}
