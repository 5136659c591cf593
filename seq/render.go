package seq

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// MakeString renders the elements between start and end, separated by
// sep, e.g. MakeString("[", ", ", "]") on 1,2,3 gives "[1, 2, 3]".
func (a *Adapter[T]) MakeString(start, sep, end string) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = a.AppendString(&b, start, sep, end)
	return b.String()
}

// AppendString renders the elements into w. A sink write failure is
// returned wrapped, with the underlying cause preserved; rendering has
// no other failure mode.
func (a *Adapter[T]) AppendString(w io.Writer, start, sep, end string) error {
	if _, err := io.WriteString(w, start); err != nil {
		return errors.Wrap(err, "append string: write start")
	}
	for i, item := range a.items {
		if i > 0 {
			if _, err := io.WriteString(w, sep); err != nil {
				return errors.Wrap(err, "append string: write separator")
			}
		}
		if _, err := fmt.Fprintf(w, "%v", item); err != nil {
			return errors.Wrap(err, "append string: write element")
		}
	}
	if _, err := io.WriteString(w, end); err != nil {
		return errors.Wrap(err, "append string: write end")
	}
	return nil
}
