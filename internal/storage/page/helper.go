package page

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// ParseValues reads page ids separated by whitespace or commas. Text after
// '#' on a line is ignored.
func ParseValues(r io.Reader) ([]util.PageID, error) {
	var ids []util.PageID
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, util.NewSimError(util.ErrTypeInvalidSequence,
					fmt.Sprintf("line %d: %q is not a page id", line, f), util.ErrInvalidSequence).
					With("line", line).With("token", f)
			}
			ids = append(ids, util.PageID(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, util.NewSimError(util.ErrTypeIOError, "read page values", err)
	}
	return ids, nil
}

// ParseString is ParseValues over a string
func ParseString(text string) ([]util.PageID, error) {
	return ParseValues(strings.NewReader(text))
}

// Random generates a reproducible sequence of length references drawn
// uniformly from pages 0..distinct-1.
func Random(length, distinct int, seed int64) (Sequence, error) {
	if length < 0 || distinct <= 0 {
		return Sequence{}, fmt.Errorf("%w: length=%d distinct=%d", util.ErrInvalidGenerator, length, distinct)
	}
	rng := rand.New(rand.NewSource(seed))
	refs := make([]util.PageID, length)
	for i := range refs {
		refs[i] = util.PageID(rng.Intn(distinct))
	}
	return Sequence{refs: refs}, nil
}
