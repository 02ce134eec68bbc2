package app

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"lifegrid/pkg/core"
)

// FrameSink receives fully encoded frames in emission order.
type FrameSink interface {
	WriteFrame(index int, frame []byte) error
	Close() error
}

// DirSink writes frame i to <dir>/<i>.<ext>.
type DirSink struct {
	dir string
	ext string
	log *log.Logger
}

// NewDirSink creates dir if needed.
func NewDirSink(dir, ext string, logger *log.Logger) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w: %w", dir, core.ErrSinkWriteFailed, err)
	}
	return &DirSink{dir: dir, ext: ext, log: logger}, nil
}

// Path returns the file name used for frame index.
func (s *DirSink) Path(index int) string {
	return filepath.Join(s.dir, strconv.Itoa(index)+"."+s.ext)
}

// WriteFrame writes one frame file, closing it on every path.
func (s *DirSink) WriteFrame(index int, frame []byte) (err error) {
	path := s.Path(index)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", path, core.ErrSinkWriteFailed, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w: %w", path, core.ErrSinkWriteFailed, cerr)
		}
	}()
	if _, err := f.Write(frame); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, core.ErrSinkWriteFailed, err)
	}
	if s.log != nil {
		s.log.Println(path)
	}
	return nil
}

// Close is a no-op; every frame file is closed as soon as it is written.
func (s *DirSink) Close() error { return nil }

// StreamSink appends every frame to a single writer.
type StreamSink struct {
	w *bufio.Writer
}

// NewStreamSink wraps w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bufio.NewWriter(w)}
}

// WriteFrame writes and flushes one frame.
func (s *StreamSink) WriteFrame(index int, frame []byte) error {
	if _, err := s.w.Write(frame); err != nil {
		return fmt.Errorf("write frame %d: %w: %w", index, core.ErrSinkWriteFailed, err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush frame %d: %w: %w", index, core.ErrSinkWriteFailed, err)
	}
	return nil
}

// Close flushes anything still buffered.
func (s *StreamSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush stream: %w: %w", core.ErrSinkWriteFailed, err)
	}
	return nil
}
