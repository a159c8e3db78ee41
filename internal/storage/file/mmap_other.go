//go:build !unix

package file

import (
	"fmt"
	"io"
)

// Platforms without mmap read the whole trace instead.
func mmap(tf *TraceFile, size int64) error {
	data := make([]byte, size)
	if _, err := io.ReadFull(tf.File, data); err != nil {
		return fmt.Errorf("read %d bytes: %w", size, err)
	}
	tf.Data = data
	tf.Size = size
	return nil
}

func munmap(tf *TraceFile) error {
	tf.Data = nil
	tf.Size = 0
	return nil
}
