package file

import (
	"errors"
	"os"
	"testing"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to write raw bytes as a trace
func writeRawTrace(t *testing.T, data []byte) string {
	t.Helper()
	path, cleanup := util.CreateTempFile(t)
	t.Cleanup(cleanup)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write raw trace: %v", err)
	}
	return path
}

func TestWriteAndReadTrace(t *testing.T) {
	long, err := page.Random(1000, 50, 3)
	require.NoError(t, err)

	tests := []struct {
		name  string
		seq   page.Sequence
		codec Codec
	}{
		{"Plain", page.NewSequence(util.PageIDs(3, 1, 4, 1, 5)...), CodecNone},
		{"LZ4", page.NewSequence(util.PageIDs(3, 1, 4, 1, 5)...), CodecLZ4},
		{"Snappy", page.NewSequence(util.PageIDs(3, 1, 4, 1, 5)...), CodecSnappy},
		{"PlainLong", long, CodecNone},
		{"LZ4Long", long, CodecLZ4},
		{"SnappyLong", long, CodecSnappy},
		{"Empty", page.NewSequence(), CodecNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, cleanup := util.CreateTempFile(t)
			defer cleanup()

			if err := WriteTrace(path, tt.seq, tt.codec); err != nil {
				t.Fatalf("Expected write success but got error: %v", err)
			}

			tf, err := OpenTrace(path)
			require.NoError(t, err, "open trace")
			defer tf.Close()

			if tt.seq.Len() > 0 {
				assert.Equal(t, tt.codec, tf.Codec(), "codec detected from magic bytes")
			}

			got, err := tf.Sequence()
			require.NoError(t, err, "decode trace")
			assert.Equal(t, tt.seq.Len(), got.Len(), "length")
			if tt.seq.Len() > 0 {
				assert.Equal(t, tt.seq.Pages(), got.Pages(), "references")
			}
		})
	}
}

func TestReadTrace(t *testing.T) {
	t.Run("CommentsAndCommas", func(t *testing.T) {
		path := writeRawTrace(t, []byte("# belady\n1,2,3,4\n1 2 5 1 2 3 4 5\n"))
		seq, err := ReadTrace(path)
		require.NoError(t, err)
		assert.Equal(t, util.PageIDs(1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5), seq.Pages())
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := writeRawTrace(t, nil)
		seq, err := ReadTrace(path)
		require.NoError(t, err)
		assert.Equal(t, 0, seq.Len())
	})

	t.Run("BadToken", func(t *testing.T) {
		path := writeRawTrace(t, []byte("1 2\nthree\n"))
		_, err := ReadTrace(path)
		assert.ErrorIs(t, err, util.ErrInvalidSequence)

		var simErr *util.SimError
		if assert.True(t, errors.As(err, &simErr)) {
			assert.Equal(t, 2, simErr.Context["line"])
		}
	})

	t.Run("CorruptLZ4", func(t *testing.T) {
		data := append([]byte{}, lz4Magic...)
		data = append(data, 0xde, 0xad, 0xbe, 0xef, 0x00, 0x01)
		path := writeRawTrace(t, data)

		_, err := ReadTrace(path)
		assert.ErrorIs(t, err, util.ErrInvalidTraceFormat)
	})

	t.Run("CorruptSnappy", func(t *testing.T) {
		data := append([]byte{}, snappyMagic...)
		data = append(data, 0x00, 0x10, 0x00, 0x00, 0xff)
		path := writeRawTrace(t, data)

		_, err := ReadTrace(path)
		assert.ErrorIs(t, err, util.ErrInvalidTraceFormat)
	})

	t.Run("MissingFile", func(t *testing.T) {
		path, _ := util.CreateTempFile(t)
		_, err := ReadTrace(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTraceFileClose(t *testing.T) {
	path := writeRawTrace(t, []byte("1 2 3\n"))
	tf, err := OpenTrace(path)
	require.NoError(t, err)
	assert.Equal(t, int64(6), tf.Size)

	assert.NoError(t, tf.Close())
	assert.Nil(t, tf.Data, "mapping released")
	assert.Nil(t, tf.File, "file released")
	assert.NoError(t, tf.Close(), "second close is a no-op")

	var nilTrace *TraceFile
	assert.NoError(t, nilTrace.Close())
	_, err = nilTrace.Sequence()
	assert.ErrorIs(t, err, util.ErrTraceFileNil)
}

func TestParseCodec(t *testing.T) {
	tests := []struct {
		in      string
		want    Codec
		wantErr bool
	}{
		{"", CodecNone, false},
		{"none", CodecNone, false},
		{"LZ4", CodecLZ4, false},
		{"snappy", CodecSnappy, false},
		{"sz", CodecSnappy, false},
		{"zstd", CodecNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCodec(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrInvalidTraceFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String round-trips")
		})
	}
}

func mustParse(t *testing.T, name string) Codec {
	t.Helper()
	c, err := ParseCodec(name)
	require.NoError(t, err)
	return c
}
