package seq_test

import (
	"strings"
	"testing"

	"github.com/denismitr/primseq/seq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSinkClosed = errors.New("sink closed")

type failingWriter struct {
	failAfter int
	written   int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written >= w.failAfter {
		return 0, errSinkClosed
	}
	w.written++
	return len(p), nil
}

func TestMakeString(t *testing.T) {
	t.Run("renders elements between delimiters", func(t *testing.T) {
		a := seq.From(1, 2, 3)

		assert.Equal(t, "[1, 2, 3]", a.MakeString("[", ", ", "]"))
	})

	t.Run("empty sequence renders only the delimiters", func(t *testing.T) {
		assert.Equal(t, "[]", seq.From[int]().MakeString("[", ", ", "]"))
	})
}

func TestAppendString(t *testing.T) {
	t.Run("writes into the sink", func(t *testing.T) {
		a := seq.From(7, 8)

		var b strings.Builder
		require.NoError(t, a.AppendString(&b, "<", "|", ">"))

		assert.Equal(t, "<7|8>", b.String())
	})

	t.Run("sink failure is wrapped with the cause preserved", func(t *testing.T) {
		a := seq.From(1, 2, 3)

		err := a.AppendString(&failingWriter{failAfter: 2}, "", ", ", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errSinkClosed))
	})
}
