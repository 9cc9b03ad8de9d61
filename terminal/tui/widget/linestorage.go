package widget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strings"
)

// ErrNoLine is returned for line indices outside the storage
var ErrNoLine = errors.New("no such line")

// LineStorage gives indexed access to lines, index 0 is the first line
type LineStorage interface {
	Line(index int) (string, error)
}

// Lines iterates storage lines in [from, to), a negative to reads until the storage ends
// Iteration stops at the first missing line or read error
func Lines(s LineStorage, from, to int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := max(from, 0); to < 0 || i < to; i++ {
			line, err := s.Line(i)
			if err != nil || !yield(i, line) {
				return
			}
		}
	}
}

// MemoryLineStorage keeps all lines in memory
// Writes append to the last line, each newline starts a new one
type MemoryLineStorage struct {
	lines []string
}

// NewMemoryLineStorage creates a storage holding lines
func NewMemoryLineStorage(lines ...string) *MemoryLineStorage {
	return &MemoryLineStorage{lines: lines}
}

// Len returns the number of stored lines
func (s *MemoryLineStorage) Len() int {
	return len(s.lines)
}

func (s *MemoryLineStorage) Line(index int) (string, error) {
	if index < 0 || index >= len(s.lines) {
		return "", fmt.Errorf("line %d of %d: %w", index, len(s.lines), ErrNoLine)
	}
	return s.lines[index], nil
}

// Write implements io.Writer
func (s *MemoryLineStorage) Write(p []byte) (int, error) {
	s.WriteString(string(p))
	return len(p), nil
}

// WriteString appends text, splitting it at newlines
func (s *MemoryLineStorage) WriteString(text string) {
	if len(s.lines) == 0 {
		s.lines = append(s.lines, "")
	}
	for {
		head, tail, found := strings.Cut(text, "\n")
		s.lines[len(s.lines)-1] += head
		if !found {
			return
		}
		s.lines = append(s.lines, "")
		text = tail
	}
}

// FileLineStorage reads lines from a file on demand
// Line start offsets are discovered lazily and remembered
type FileLineStorage struct {
	file    *os.File
	path    string
	offsets []int64
}

// OpenFileLineStorage opens path for line access, Close releases the file
func OpenFileLineStorage(path string) (*FileLineStorage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open line storage: %w", err)
	}
	return &FileLineStorage{file: f, path: path, offsets: []int64{0}}, nil
}

// Path returns the path the storage was opened with
func (s *FileLineStorage) Path() string {
	return s.path
}

// Stat returns the file metadata
func (s *FileLineStorage) Stat() (os.FileInfo, error) {
	return s.file.Stat()
}

// Close releases the file
func (s *FileLineStorage) Close() error {
	return s.file.Close()
}

// Line reads line index, without its trailing newline
// Invalid UTF-8 is replaced with U+FFFD
func (s *FileLineStorage) Line(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("line %d: %w", index, ErrNoLine)
	}
	for {
		known := min(index, len(s.offsets)-1)
		start := s.offsets[known]
		line, err := s.readLineAt(start)
		if err != nil {
			return "", err
		}
		if len(line) == 0 {
			return "", fmt.Errorf("line %d past end of %s: %w", index, s.path, ErrNoLine)
		}
		if index == known {
			text := strings.TrimSuffix(string(line), "\n")
			return strings.ToValidUTF8(text, "�"), nil
		}
		s.offsets = append(s.offsets, start+int64(len(line)))
	}
}

// readLineAt returns the bytes from offset up to and including the next newline
func (s *FileLineStorage) readLineAt(offset int64) ([]byte, error) {
	r := bufio.NewReader(io.NewSectionReader(s.file, offset, math.MaxInt64-offset))
	line, err := r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s at %d: %w", s.path, offset, err)
	}
	return line, nil
}
