package tombola

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
)

type DrainRowFn[T cmp.Ordered] func(T) []any

type drainCopySource[T cmp.Ordered] struct {
	picker Picker[T]
	row    DrainRowFn[T]
	item   T
	err    error
}

// DrainCopySource streams p in draw order, one row per picked item, until
// it is empty. The rows can be fed to pgx.Conn.CopyFrom.
func DrainCopySource[T cmp.Ordered](p Picker[T], row DrainRowFn[T]) pgx.CopyFromSource {
	if row == nil {
		row = func(item T) []any { return []any{item} }
	}
	return &drainCopySource[T]{picker: p, row: row}
}

func (s *drainCopySource[T]) Next() bool {
	if s.err != nil {
		return false
	}

	item, err := s.picker.Pick()
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			s.err = err
		}
		return false
	}

	s.item = item
	return true
}

func (s *drainCopySource[T]) Values() ([]any, error) {
	return s.row(s.item), s.err
}

func (s *drainCopySource[T]) Err() error {
	return s.err
}

var copyTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

func copyTextValue(v any) string {
	if v == nil {
		return `\N`
	}
	return copyTextEscaper.Replace(fmt.Sprint(v))
}

// WriteCopyText consumes src the way pgx.Conn.CopyFrom does and writes its
// rows to w in the COPY text format, ready for `\copy ... from stdin`.
// Nothing is written when src fails.
func WriteCopyText(w io.Writer, src pgx.CopyFromSource) (int64, error) {
	var buf bytes.Buffer
	var rows int64
	for src.Next() {
		values, err := src.Values()
		if err != nil {
			return 0, err
		}
		for i, v := range values {
			if i > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(copyTextValue(v))
		}
		buf.WriteByte('\n')
		rows++
	}
	if err := src.Err(); err != nil {
		return 0, err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return rows, nil
}
