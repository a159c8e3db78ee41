package file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

// MaxTraceSize bounds the bytes mapped for one trace file.
const MaxTraceSize = 1 << 30

const idsPerLine = 16

var _ Filer = (*TraceFile)(nil)

/**
* Trace files hold a reference sequence as text, optionally compressed.
* The file is mapped read-only and decoded straight from the mapping.
**/
type TraceFile struct {
	Path   string
	File   *os.File
	Data   []byte
	Size   int64
	mapped bool
}

func OpenTrace(path string) (*TraceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat trace: %w", err)
	}
	if info.Size() > MaxTraceSize {
		f.Close()
		return nil, fmt.Errorf("%w: %d bytes", util.ErrTraceTooLarge, info.Size())
	}

	tf := &TraceFile{Path: path, File: f}
	if info.Size() == 0 {
		return tf, nil
	}

	if err := mmap(tf, info.Size()); err != nil {
		f.Close()
		return nil, fmt.Errorf("map trace fail: %w", err)
	}
	return tf, nil
}

// Codec detects the compression from the leading magic bytes
func (tf *TraceFile) Codec() Codec {
	switch {
	case bytes.HasPrefix(tf.Data, lz4Magic):
		return CodecLZ4
	case bytes.HasPrefix(tf.Data, snappyMagic):
		return CodecSnappy
	default:
		return CodecNone
	}
}

/* READ TRACE */
func (tf *TraceFile) Sequence() (page.Sequence, error) {
	if tf == nil {
		return page.Sequence{}, util.ErrTraceFileNil
	}

	var r io.Reader = bytes.NewReader(tf.Data)
	switch tf.Codec() {
	case CodecLZ4:
		r = lz4.NewReader(r)
	case CodecSnappy:
		r = snappy.NewReader(r)
	}

	ids, err := page.ParseValues(r)
	if err != nil {
		if !errors.Is(err, util.ErrInvalidSequence) {
			err = util.NewSimError(util.ErrTypeInvalidTrace, "decode "+tf.Codec().String()+" trace",
				errors.Join(util.ErrInvalidTraceFormat, err)).With("path", tf.Path)
		}
		return page.Sequence{}, fmt.Errorf("[ReadTrace] %s: %w", tf.Path, err)
	}
	return page.NewSequence(ids...), nil
}

/**
* CLOSE FUNCTION
**/
func (tf *TraceFile) Close() error {
	if tf == nil {
		return nil // Idempotent
	}
	var err error
	if e := munmap(tf); e != nil {
		err = fmt.Errorf("[close] unmap trace fail: %w", e)
	}
	if tf.File != nil {
		if e := tf.File.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("close trace: %w", e))
		}
		tf.File = nil
	}
	return err
}

// ReadTrace opens, decodes and closes a trace file.
func ReadTrace(path string) (page.Sequence, error) {
	tf, err := OpenTrace(path)
	if err != nil {
		return page.Sequence{}, err
	}
	seq, err := tf.Sequence()
	if cerr := tf.Close(); err == nil {
		err = cerr
	}
	return seq, err
}

/* WRITE TRACE */
func WriteTrace(path string, seq page.Sequence, codec Codec) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = fmt.Errorf("close trace: %w", e)
		}
	}()

	var sink io.WriteCloser
	switch codec {
	case CodecNone:
		sink = nopCloser{f}
	case CodecLZ4:
		sink = lz4.NewWriter(f)
	case CodecSnappy:
		sink = snappy.NewBufferedWriter(f)
	default:
		return fmt.Errorf("%w: %v", util.ErrInvalidTraceFormat, codec)
	}

	w := bufio.NewWriter(sink)
	buf := make([]byte, 0, 24)
	for i := 0; i < seq.Len(); i++ {
		if i > 0 {
			sep := byte(' ')
			if i%idsPerLine == 0 {
				sep = '\n'
			}
			if err := w.WriteByte(sep); err != nil {
				return fmt.Errorf("write trace: %w", err)
			}
		}
		buf = strconv.AppendUint(buf[:0], uint64(seq.At(i)), 10)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}
	if seq.Len() > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush trace: %w", err)
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("finish %s stream: %w", codec, err)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
