//go:build unix

package file

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func mmap(tf *TraceFile, size int64) error {
	data, err := unix.Mmap(int(tf.File.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	tf.Data = data
	tf.Size = size
	tf.mapped = true
	return nil
}

func munmap(tf *TraceFile) error {
	if !tf.mapped {
		tf.Data = nil
		return nil
	}
	err := unix.Munmap(tf.Data)
	tf.Data = nil
	tf.Size = 0
	tf.mapped = false
	return err
}
