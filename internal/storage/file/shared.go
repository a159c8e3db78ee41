package file

import (
	"fmt"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

type Filer interface {
	Sequence() (page.Sequence, error)
	Close() error
}

// Codec is the compression applied to a trace file.
type Codec int

const (
	CodecNone Codec = iota
	CodecLZ4
	CodecSnappy
)

var (
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "text":
		return CodecNone, nil
	case "lz4":
		return CodecLZ4, nil
	case "snappy", "sz":
		return CodecSnappy, nil
	default:
		return CodecNone, fmt.Errorf("%w: unknown codec %q", util.ErrInvalidTraceFormat, name)
	}
}
