package util

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func CreateTempFile(t *testing.T) (string, func()) {
	t.Helper()
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, fmt.Sprintf("pagesim-test-%d.trace", rand.Intn(100)+10))
	return tempFile, func() {
		os.Remove(tempFile)
	}
}

// PageIDs converts plain ints for table-driven tests.
func PageIDs(values ...int) []PageID {
	ids := make([]PageID, len(values))
	for i, v := range values {
		ids[i] = PageID(v)
	}
	return ids
}
