package emitter

import (
	"bytes"
	"fmt"
)

type cw struct{ bytes.Buffer }

func (w *cw) line(format string, args ...interface{}) {
	fmt.Fprintf(&w.Buffer, format+"\n", args...)
}
